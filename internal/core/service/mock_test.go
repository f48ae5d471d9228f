package service

import (
	"context"

	"balebridge/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/mock"
)

type MockBot struct {
	mock.Mock
}

func (m *MockBot) GetMe(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*models.User)
	return res, args.Error(1)
}

func (m *MockBot) Logout(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) Close(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) DeleteMessage(ctx context.Context, params *bot.DeleteMessageParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) CopyMessage(ctx context.Context, params *bot.CopyMessageParams) (*models.MessageID, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.MessageID)
	return res, args.Error(1)
}

func (m *MockBot) ForwardMessage(ctx context.Context, params *bot.ForwardMessageParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) SendDocument(ctx context.Context, params *bot.SendDocumentParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) SendAudio(ctx context.Context, params *bot.SendAudioParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) SendVoice(ctx context.Context, params *bot.SendVoiceParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) SendVideo(ctx context.Context, params *bot.SendVideoParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) SendAnimation(ctx context.Context, params *bot.SendAnimationParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) SendSticker(ctx context.Context, params *bot.SendStickerParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) SendMediaGroup(ctx context.Context, params *bot.SendMediaGroupParams) ([]*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).([]*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) SendLocation(ctx context.Context, params *bot.SendLocationParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.Message)
	return res, args.Error(1)
}

func (m *MockBot) SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) GetChat(ctx context.Context, params *bot.GetChatParams) (*models.ChatFullInfo, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.ChatFullInfo)
	return res, args.Error(1)
}

func (m *MockBot) GetChatAdministrators(ctx context.Context, params *bot.GetChatAdministratorsParams) ([]models.ChatMember, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).([]models.ChatMember)
	return res, args.Error(1)
}

func (m *MockBot) GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.ChatMember)
	return res, args.Error(1)
}

func (m *MockBot) BanChatMember(ctx context.Context, params *bot.BanChatMemberParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) UnbanChatMember(ctx context.Context, params *bot.UnbanChatMemberParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) PromoteChatMember(ctx context.Context, params *bot.PromoteChatMemberParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) LeaveChat(ctx context.Context, params *bot.LeaveChatParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) SetChatTitle(ctx context.Context, params *bot.SetChatTitleParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) SetChatDescription(ctx context.Context, params *bot.SetChatDescriptionParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) SetChatPhoto(ctx context.Context, params *bot.SetChatPhotoParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) DeleteChatPhoto(ctx context.Context, params *bot.DeleteChatPhotoParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) PinChatMessage(ctx context.Context, params *bot.PinChatMessageParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) UnpinChatMessage(ctx context.Context, params *bot.UnpinChatMessageParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) ExportChatInviteLink(ctx context.Context, params *bot.ExportChatInviteLinkParams) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func (m *MockBot) AnswerPreCheckoutQuery(ctx context.Context, params *bot.AnswerPreCheckoutQueryParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) GetStickerSet(ctx context.Context, params *bot.GetStickerSetParams) (*models.StickerSet, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.StickerSet)
	return res, args.Error(1)
}

func (m *MockBot) GetFile(ctx context.Context, params *bot.GetFileParams) (*models.File, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*models.File)
	return res, args.Error(1)
}

func (m *MockBot) SetWebhook(ctx context.Context, params *bot.SetWebhookParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) DeleteWebhook(ctx context.Context, params *bot.DeleteWebhookParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) GetWebhookInfo(ctx context.Context) (*models.WebhookInfo, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*models.WebhookInfo)
	return res, args.Error(1)
}

func (m *MockBot) FileDownloadLink(f *models.File) string {
	return "https://files.example/" + f.FilePath
}

type MockRaw struct {
	mock.Mock
}

func (m *MockRaw) PostJSON(ctx context.Context, method string, payload any) (map[string]any, error) {
	args := m.Called(ctx, method, payload)
	res, _ := args.Get(0).(map[string]any)
	return res, args.Error(1)
}

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, fileID string) (domain.BinaryData, error) {
	args := m.Called(ctx, fileID)
	bin, _ := args.Get(0).(domain.BinaryData)
	return bin, args.Error(1)
}
