package port

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

//go:generate mockery --name BotAPI

// BotAPI is the part of the shared bot client used by the dispatcher. It is
// satisfied by *bot.Bot.
type BotAPI interface {
	GetMe(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) (bool, error)
	Close(ctx context.Context) (bool, error)

	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	DeleteMessage(ctx context.Context, params *bot.DeleteMessageParams) (bool, error)
	CopyMessage(ctx context.Context, params *bot.CopyMessageParams) (*models.MessageID, error)
	ForwardMessage(ctx context.Context, params *bot.ForwardMessageParams) (*models.Message, error)
	SendDocument(ctx context.Context, params *bot.SendDocumentParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
	SendAudio(ctx context.Context, params *bot.SendAudioParams) (*models.Message, error)
	SendVoice(ctx context.Context, params *bot.SendVoiceParams) (*models.Message, error)
	SendVideo(ctx context.Context, params *bot.SendVideoParams) (*models.Message, error)
	SendAnimation(ctx context.Context, params *bot.SendAnimationParams) (*models.Message, error)
	SendSticker(ctx context.Context, params *bot.SendStickerParams) (*models.Message, error)
	SendMediaGroup(ctx context.Context, params *bot.SendMediaGroupParams) ([]*models.Message, error)
	SendLocation(ctx context.Context, params *bot.SendLocationParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)

	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)

	GetChat(ctx context.Context, params *bot.GetChatParams) (*models.ChatFullInfo, error)
	GetChatAdministrators(ctx context.Context, params *bot.GetChatAdministratorsParams) ([]models.ChatMember, error)
	GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error)
	BanChatMember(ctx context.Context, params *bot.BanChatMemberParams) (bool, error)
	UnbanChatMember(ctx context.Context, params *bot.UnbanChatMemberParams) (bool, error)
	PromoteChatMember(ctx context.Context, params *bot.PromoteChatMemberParams) (bool, error)
	LeaveChat(ctx context.Context, params *bot.LeaveChatParams) (bool, error)
	SetChatTitle(ctx context.Context, params *bot.SetChatTitleParams) (bool, error)
	SetChatDescription(ctx context.Context, params *bot.SetChatDescriptionParams) (bool, error)
	SetChatPhoto(ctx context.Context, params *bot.SetChatPhotoParams) (bool, error)
	DeleteChatPhoto(ctx context.Context, params *bot.DeleteChatPhotoParams) (bool, error)
	PinChatMessage(ctx context.Context, params *bot.PinChatMessageParams) (bool, error)
	UnpinChatMessage(ctx context.Context, params *bot.UnpinChatMessageParams) (bool, error)
	ExportChatInviteLink(ctx context.Context, params *bot.ExportChatInviteLinkParams) (string, error)

	AnswerPreCheckoutQuery(ctx context.Context, params *bot.AnswerPreCheckoutQueryParams) (bool, error)

	GetStickerSet(ctx context.Context, params *bot.GetStickerSetParams) (*models.StickerSet, error)

	FileLocator
}

// FileLocator is the metadata half of the two-step file retrieval.
type FileLocator interface {
	// GetFile looks up a file by its identifier and returns its server-relative path.
	GetFile(ctx context.Context, params *bot.GetFileParams) (*models.File, error)
	// FileDownloadLink returns the absolute URL a resolved file can be fetched from.
	FileDownloadLink(f *models.File) string
}

// WebhookManager controls where the bot API delivers updates.
type WebhookManager interface {
	SetWebhook(ctx context.Context, params *bot.SetWebhookParams) (bool, error)
	DeleteWebhook(ctx context.Context, params *bot.DeleteWebhookParams) (bool, error)
	GetWebhookInfo(ctx context.Context) (*models.WebhookInfo, error)
}
