package payload

import (
	"balebridge/internal/core/domain"

	"github.com/go-telegram/bot"
)

type chatInput struct {
	ChatID string `param:"chatId"`
}

func decodeChatID(p domain.Params) (string, error) {
	var in chatInput
	if err := p.Decode(&in, "chatId"); err != nil {
		return "", err
	}

	return in.ChatID, nil
}

func GetChat(p domain.Params) (*bot.GetChatParams, error) {
	chatID, err := decodeChatID(p)
	if err != nil {
		return nil, err
	}

	return &bot.GetChatParams{ChatID: chatID}, nil
}

func GetChatAdministrators(p domain.Params) (*bot.GetChatAdministratorsParams, error) {
	chatID, err := decodeChatID(p)
	if err != nil {
		return nil, err
	}

	return &bot.GetChatAdministratorsParams{ChatID: chatID}, nil
}

// ChatRequest is the body of low-level calls addressing only a chat.
type ChatRequest struct {
	ChatID string `json:"chat_id"`
}

func GetChatMembersCount(p domain.Params) (*ChatRequest, error) {
	chatID, err := decodeChatID(p)
	if err != nil {
		return nil, err
	}

	return &ChatRequest{ChatID: chatID}, nil
}

type memberInput struct {
	ChatID         string `param:"chatId"`
	UserID         int64  `param:"userId"`
	UntilDate      int    `param:"untilDate"`
	RevokeMessages bool   `param:"revokeMessages"`
	OnlyIfBanned   bool   `param:"onlyIfBanned"`
}

func GetChatMember(p domain.Params) (*bot.GetChatMemberParams, error) {
	var in memberInput
	if err := p.Decode(&in, "chatId", "userId"); err != nil {
		return nil, err
	}

	return &bot.GetChatMemberParams{ChatID: in.ChatID, UserID: in.UserID}, nil
}

func BanChatMember(p domain.Params) (*bot.BanChatMemberParams, error) {
	var in memberInput
	if err := p.Decode(&in, "chatId", "userId"); err != nil {
		return nil, err
	}

	return &bot.BanChatMemberParams{
		ChatID:         in.ChatID,
		UserID:         in.UserID,
		UntilDate:      in.UntilDate,
		RevokeMessages: in.RevokeMessages,
	}, nil
}

func UnbanChatMember(p domain.Params) (*bot.UnbanChatMemberParams, error) {
	var in memberInput
	if err := p.Decode(&in, "chatId", "userId"); err != nil {
		return nil, err
	}

	return &bot.UnbanChatMemberParams{
		ChatID:       in.ChatID,
		UserID:       in.UserID,
		OnlyIfBanned: in.OnlyIfBanned,
	}, nil
}

type promotionRights struct {
	CanChangeInfo      bool `param:"can_change_info"`
	CanPostMessages    bool `param:"can_post_messages"`
	CanEditMessages    bool `param:"can_edit_messages"`
	CanDeleteMessages  bool `param:"can_delete_messages"`
	CanInviteUsers     bool `param:"can_invite_users"`
	CanRestrictMembers bool `param:"can_restrict_members"`
	CanPinMessages     bool `param:"can_pin_messages"`
	CanPromoteMembers  bool `param:"can_promote_members"`
}

func PromoteChatMember(p domain.Params) (*bot.PromoteChatMemberParams, error) {
	var in memberInput
	if err := p.Decode(&in, "chatId", "userId"); err != nil {
		return nil, err
	}

	rights, err := p.Map("permissions")
	if err != nil {
		return nil, err
	}
	var r promotionRights
	if err := domain.Params(rights).Decode(&r); err != nil {
		return nil, err
	}

	return &bot.PromoteChatMemberParams{
		ChatID:             in.ChatID,
		UserID:             in.UserID,
		CanChangeInfo:      r.CanChangeInfo,
		CanPostMessages:    r.CanPostMessages,
		CanEditMessages:    r.CanEditMessages,
		CanDeleteMessages:  r.CanDeleteMessages,
		CanInviteUsers:     r.CanInviteUsers,
		CanRestrictMembers: r.CanRestrictMembers,
		CanPinMessages:     r.CanPinMessages,
		CanPromoteMembers:  r.CanPromoteMembers,
	}, nil
}

func LeaveChat(p domain.Params) (*bot.LeaveChatParams, error) {
	chatID, err := decodeChatID(p)
	if err != nil {
		return nil, err
	}

	return &bot.LeaveChatParams{ChatID: chatID}, nil
}

type chatTextInput struct {
	ChatID      string `param:"chatId"`
	Title       string `param:"title"`
	Description string `param:"description"`
}

func SetChatTitle(p domain.Params) (*bot.SetChatTitleParams, error) {
	var in chatTextInput
	if err := p.Decode(&in, "chatId", "title"); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, &domain.ValidationError{Param: "title", Err: errEmpty}
	}

	return &bot.SetChatTitleParams{ChatID: in.ChatID, Title: in.Title}, nil
}

func SetChatDescription(p domain.Params) (*bot.SetChatDescriptionParams, error) {
	var in chatTextInput
	if err := p.Decode(&in, "chatId"); err != nil {
		return nil, err
	}

	return &bot.SetChatDescriptionParams{ChatID: in.ChatID, Description: in.Description}, nil
}

func SetChatPhoto(p domain.Params, item domain.Item) (*bot.SetChatPhotoParams, error) {
	chatID, err := decodeChatID(p)
	if err != nil {
		return nil, err
	}

	photo, err := InputFile(p, item)
	if err != nil {
		return nil, err
	}

	return &bot.SetChatPhotoParams{ChatID: chatID, Photo: photo}, nil
}

func DeleteChatPhoto(p domain.Params) (*bot.DeleteChatPhotoParams, error) {
	chatID, err := decodeChatID(p)
	if err != nil {
		return nil, err
	}

	return &bot.DeleteChatPhotoParams{ChatID: chatID}, nil
}

type pinInput struct {
	ChatID              string `param:"chatId"`
	MessageID           int    `param:"messageId"`
	DisableNotification bool   `param:"disable_notification"`
}

func PinChatMessage(p domain.Params) (*bot.PinChatMessageParams, error) {
	var in pinInput
	if err := p.Decode(&in, "chatId", "messageId"); err != nil {
		return nil, err
	}

	return &bot.PinChatMessageParams{
		ChatID:              in.ChatID,
		MessageID:           in.MessageID,
		DisableNotification: in.DisableNotification,
	}, nil
}

// UnpinChatMessage unpins messageId, or the most recent pin when it is omitted.
func UnpinChatMessage(p domain.Params) (*bot.UnpinChatMessageParams, error) {
	var in pinInput
	if err := p.Decode(&in, "chatId"); err != nil {
		return nil, err
	}

	return &bot.UnpinChatMessageParams{ChatID: in.ChatID, MessageID: in.MessageID}, nil
}

func ExportChatInviteLink(p domain.Params) (*bot.ExportChatInviteLinkParams, error) {
	chatID, err := decodeChatID(p)
	if err != nil {
		return nil, err
	}

	return &bot.ExportChatInviteLinkParams{ChatID: chatID}, nil
}
