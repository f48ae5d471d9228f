package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"balebridge/internal/core/domain"
	"balebridge/internal/core/payload"
	"balebridge/internal/core/port"

	"github.com/go-telegram/bot/models"
)

// binaryProperty is the record binary key downloaded content is stored under.
const binaryProperty = "data"

func (d *Dispatcher) handlerTable() map[domain.Action]handler {
	return map[domain.Action]handler{
		{Resource: domain.ResourceBot, Operation: domain.OpGetMe}: func(ctx context.Context, c *call) (*domain.OutboundRecord, error) {
			user, err := d.bot.GetMe(ctx)
			if err != nil {
				return nil, remoteError("getMe", err)
			}
			return objectRecord(c, user)
		},
		{Resource: domain.ResourceBot, Operation: domain.OpLogOut}: func(ctx context.Context, c *call) (*domain.OutboundRecord, error) {
			ok, err := d.bot.Logout(ctx)
			if err != nil {
				return nil, remoteError("logOut", err)
			}
			return flagRecord(c, "logged_out", ok), nil
		},
		{Resource: domain.ResourceBot, Operation: domain.OpClose}: func(ctx context.Context, c *call) (*domain.OutboundRecord, error) {
			ok, err := d.bot.Close(ctx)
			if err != nil {
				return nil, remoteError("close", err)
			}
			return flagRecord(c, "closed", ok), nil
		},

		{Resource: domain.ResourceMessage, Operation: domain.OpSendMessage}:     d.sendMessage,
		{Resource: domain.ResourceMessage, Operation: domain.OpEditMessageText}: d.editMessageText,
		{Resource: domain.ResourceMessage, Operation: domain.OpDeleteMessage}: shared("deleteMessage",
			fromParams(payload.DeleteMessage), d.bot.DeleteMessage, flag("messageDeleted")),
		{Resource: domain.ResourceMessage, Operation: domain.OpCopyMessage}: shared("copyMessage",
			fromParams(payload.CopyMessage), d.bot.CopyMessage, object[*models.MessageID]),
		{Resource: domain.ResourceMessage, Operation: domain.OpForwardMessage}: shared("forwardMessage",
			fromParams(payload.ForwardMessage), d.bot.ForwardMessage, object[*models.Message]),
		{Resource: domain.ResourceMessage, Operation: domain.OpSendDocument}: shared("sendDocument",
			fromItem(payload.SendDocument), d.bot.SendDocument, object[*models.Message]),
		{Resource: domain.ResourceMessage, Operation: domain.OpSendPhoto}: shared("sendPhoto",
			fromItem(payload.SendPhoto), d.bot.SendPhoto, object[*models.Message]),
		{Resource: domain.ResourceMessage, Operation: domain.OpSendAudio}: shared("sendAudio",
			fromItem(payload.SendAudio), d.bot.SendAudio, object[*models.Message]),
		{Resource: domain.ResourceMessage, Operation: domain.OpSendVoice}: shared("sendVoice",
			fromItem(payload.SendVoice), d.bot.SendVoice, object[*models.Message]),
		{Resource: domain.ResourceMessage, Operation: domain.OpSendVideo}: shared("sendVideo",
			fromItem(payload.SendVideo), d.bot.SendVideo, object[*models.Message]),
		{Resource: domain.ResourceMessage, Operation: domain.OpSendAnimation}: shared("sendAnimation",
			fromItem(payload.SendAnimation), d.bot.SendAnimation, object[*models.Message]),
		{Resource: domain.ResourceMessage, Operation: domain.OpSendSticker}: shared("sendSticker",
			fromParams(payload.SendSticker), d.bot.SendSticker, object[*models.Message]),
		{Resource: domain.ResourceMessage, Operation: domain.OpSendMediaGroup}: shared("sendMediaGroup",
			fromParams(payload.SendMediaGroup), d.bot.SendMediaGroup, list[*models.Message]("messages")),
		{Resource: domain.ResourceMessage, Operation: domain.OpSendLocation}: shared("sendLocation",
			fromParams(payload.SendLocation), d.bot.SendLocation, object[*models.Message]),
		{Resource: domain.ResourceMessage, Operation: domain.OpSendChatAction}: shared("sendChatAction",
			fromParams(payload.SendChatAction), d.bot.SendChatAction, flag("successful")),
		{Resource: domain.ResourceMessage, Operation: domain.OpSendContact}: posted(d.raw, "sendContact",
			fromParams(payload.SendContact)),

		{Resource: domain.ResourceCallback, Operation: domain.OpAnswerQuery}:       d.answerQuery,
		{Resource: domain.ResourceCallback, Operation: domain.OpAnswerInlineQuery}: d.answerInlineQuery,

		{Resource: domain.ResourceChat, Operation: domain.OpGetChat}: shared("getChat",
			fromParams(payload.GetChat), d.bot.GetChat, object[*models.ChatFullInfo]),
		{Resource: domain.ResourceChat, Operation: domain.OpGetChatAdministrators}: shared("getChatAdministrators",
			fromParams(payload.GetChatAdministrators), d.bot.GetChatAdministrators, list[models.ChatMember]("administrators")),
		{Resource: domain.ResourceChat, Operation: domain.OpGetChatMember}: shared("getChatMember",
			fromParams(payload.GetChatMember), d.bot.GetChatMember, object[*models.ChatMember]),
		{Resource: domain.ResourceChat, Operation: domain.OpGetChatMembersCount}: posted(d.raw, "getChatMembersCount",
			fromParams(payload.GetChatMembersCount)),
		{Resource: domain.ResourceChat, Operation: domain.OpBanChatMember}: shared("banChatMember",
			fromParams(payload.BanChatMember), d.bot.BanChatMember, flag("successful")),
		{Resource: domain.ResourceChat, Operation: domain.OpUnbanChatMember}: shared("unbanChatMember",
			fromParams(payload.UnbanChatMember), d.bot.UnbanChatMember, flag("successful")),
		{Resource: domain.ResourceChat, Operation: domain.OpPromoteChatMember}: shared("promoteChatMember",
			fromParams(payload.PromoteChatMember), d.bot.PromoteChatMember, flag("successful")),
		{Resource: domain.ResourceChat, Operation: domain.OpLeaveChat}: shared("leaveChat",
			fromParams(payload.LeaveChat), d.bot.LeaveChat, flag("successful")),
		{Resource: domain.ResourceChat, Operation: domain.OpSetChatTitle}: shared("setChatTitle",
			fromParams(payload.SetChatTitle), d.bot.SetChatTitle, flag("successful")),
		{Resource: domain.ResourceChat, Operation: domain.OpSetChatDescription}: shared("setChatDescription",
			fromParams(payload.SetChatDescription), d.bot.SetChatDescription, flag("successful")),
		{Resource: domain.ResourceChat, Operation: domain.OpSetChatPhoto}: shared("setChatPhoto",
			fromItem(payload.SetChatPhoto), d.bot.SetChatPhoto, flag("successful")),
		{Resource: domain.ResourceChat, Operation: domain.OpDeleteChatPhoto}: shared("deleteChatPhoto",
			fromParams(payload.DeleteChatPhoto), d.bot.DeleteChatPhoto, flag("successful")),
		{Resource: domain.ResourceChat, Operation: domain.OpPinChatMessage}: shared("pinChatMessage",
			fromParams(payload.PinChatMessage), d.bot.PinChatMessage, flag("successful")),
		{Resource: domain.ResourceChat, Operation: domain.OpUnpinChatMessage}: shared("unpinChatMessage",
			fromParams(payload.UnpinChatMessage), d.bot.UnpinChatMessage, flag("successful")),
		{Resource: domain.ResourceChat, Operation: domain.OpExportChatInviteLink}: shared("exportChatInviteLink",
			fromParams(payload.ExportChatInviteLink), d.bot.ExportChatInviteLink, text("invite_link")),

		{Resource: domain.ResourcePayment, Operation: domain.OpSendInvoice}: posted(d.raw, "sendInvoice",
			fromParams(payload.SendInvoice)),
		{Resource: domain.ResourcePayment, Operation: domain.OpAnswerPreCheckoutQuery}: shared("answerPreCheckoutQuery",
			fromParams(payload.AnswerPreCheckoutQuery), d.bot.AnswerPreCheckoutQuery, flag("successful")),
		{Resource: domain.ResourcePayment, Operation: domain.OpInquireTransaction}: posted(d.raw, "inquireTransaction",
			fromParams(payload.InquireTransaction)),

		{Resource: domain.ResourceSticker, Operation: domain.OpGetStickerSet}: shared("getStickerSet",
			fromParams(payload.GetStickerSet), d.bot.GetStickerSet, object[*models.StickerSet]),
		{Resource: domain.ResourceSticker, Operation: domain.OpCreateNewStickerSet}: posted(d.raw, "createNewStickerSet",
			fromParams(payload.CreateNewStickerSet)),
		{Resource: domain.ResourceSticker, Operation: domain.OpAddStickerToSet}: posted(d.raw, "addStickerToSet",
			fromParams(payload.AddStickerToSet)),

		{Resource: domain.ResourceFile, Operation: domain.OpGetFile}: shared("getFile",
			fromParams(payload.GetFile), d.bot.GetFile, object[*models.File]),
		{Resource: domain.ResourceFile, Operation: domain.OpDownloadFile}: d.downloadFile,
	}
}

// sendMessage drops the item when the remote call fails: no record and no
// error are produced. Parameter problems are still reported.
func (d *Dispatcher) sendMessage(ctx context.Context, c *call) (*domain.OutboundRecord, error) {
	params, err := payload.SendMessage(c.params)
	if err != nil {
		return nil, err
	}

	msg, err := d.bot.SendMessage(ctx, params)
	if err != nil {
		c.log.Warn().Err(err).Msg("sendMessage failed, item dropped")
		return nil, nil
	}

	return objectRecord(c, msg)
}

// editMessageText sends chat message edits through the shared client. Inline
// message edits are answered with a bare boolean, so they are posted directly.
func (d *Dispatcher) editMessageText(ctx context.Context, c *call) (*domain.OutboundRecord, error) {
	req, err := payload.EditMessageText(c.params)
	if err != nil {
		return nil, err
	}

	if req.IsInline() {
		res, err := d.raw.PostJSON(ctx, "editMessageText", req)
		if err != nil {
			return nil, err
		}
		record := domain.NewRecord(c.index, res)
		return &record, nil
	}

	params, err := req.Params()
	if err != nil {
		return nil, err
	}

	msg, err := d.bot.EditMessageText(ctx, params)
	if err != nil {
		return nil, remoteError("editMessageText", err)
	}

	return objectRecord(c, msg)
}

// answerQuery never fails on the remote side: a rejected answer becomes a
// record describing the failure.
func (d *Dispatcher) answerQuery(ctx context.Context, c *call) (*domain.OutboundRecord, error) {
	params, err := payload.AnswerCallbackQuery(c.params)
	if err != nil {
		return nil, err
	}

	ok, err := d.bot.AnswerCallbackQuery(ctx, params)
	if err != nil {
		c.log.Warn().Err(err).Msg("answerCallbackQuery failed")

		details := map[string]any{}
		var remote *domain.RemoteCallError
		if errors.As(err, &remote) && remote.Body != nil {
			details = remote.Body
		}

		record := domain.NewRecord(c.index, map[string]any{
			"successful":   false,
			"errorMessage": err.Error(),
			"errorDetails": details,
		})
		return &record, nil
	}

	return flagRecord(c, "successful", ok), nil
}

func (d *Dispatcher) answerInlineQuery(ctx context.Context, c *call) (*domain.OutboundRecord, error) {
	answer, err := payload.AnswerInlineQuery(c.params)
	if err != nil {
		return nil, err
	}

	res, err := d.raw.PostJSON(ctx, "answerInlineQuery", answer)
	if err != nil {
		return nil, fmt.Errorf("failed to answer inline query: %w", err)
	}

	record := domain.NewRecord(c.index, map[string]any{"successful": res["result"]})
	return &record, nil
}

func (d *Dispatcher) downloadFile(ctx context.Context, c *call) (*domain.OutboundRecord, error) {
	params, err := payload.GetFile(c.params)
	if err != nil {
		return nil, err
	}

	bin, err := d.resolver.Resolve(ctx, params.FileID)
	if err != nil {
		return nil, err
	}

	record := domain.NewRecord(c.index, map[string]any{
		"file_id":   params.FileID,
		"file_name": bin.FileName,
		"file_size": len(bin.Data),
	})
	record.Binary[binaryProperty] = bin

	return &record, nil
}

// posted sends the assembled body as JSON through the low-level caller and
// keeps the response verbatim.
func posted[P any](raw port.RawCaller, method string, assemble func(c *call) (P, error)) handler {
	return func(ctx context.Context, c *call) (*domain.OutboundRecord, error) {
		body, err := assemble(c)
		if err != nil {
			return nil, err
		}

		res, err := raw.PostJSON(ctx, method, body)
		if err != nil {
			return nil, err
		}

		record := domain.NewRecord(c.index, res)
		return &record, nil
	}
}

// shared wires an assembler, a shared client method and a result shape into
// a handler.
func shared[P, R any](method string, assemble func(c *call) (P, error),
	send func(context.Context, P) (R, error), shape func(R) (map[string]any, error)) handler {
	return func(ctx context.Context, c *call) (*domain.OutboundRecord, error) {
		params, err := assemble(c)
		if err != nil {
			return nil, err
		}

		res, err := send(ctx, params)
		if err != nil {
			return nil, remoteError(method, err)
		}

		out, err := shape(res)
		if err != nil {
			return nil, fmt.Errorf("decoding %s result: %w", method, err)
		}

		record := domain.NewRecord(c.index, out)
		return &record, nil
	}
}

func fromParams[P any](f func(domain.Params) (P, error)) func(c *call) (P, error) {
	return func(c *call) (P, error) {
		return f(c.params)
	}
}

func fromItem[P any](f func(domain.Params, domain.Item) (P, error)) func(c *call) (P, error) {
	return func(c *call) (P, error) {
		return f(c.params, c.item)
	}
}

func remoteError(method string, err error) error {
	var remote *domain.RemoteCallError
	if errors.As(err, &remote) {
		return err
	}

	return &domain.RemoteCallError{Method: method, Err: err}
}

func object[R any](res R) (map[string]any, error) {
	raw, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}

	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func list[R any](key string) func([]R) (map[string]any, error) {
	return func(res []R) (map[string]any, error) {
		raw, err := json.Marshal(res)
		if err != nil {
			return nil, err
		}

		var items []any
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		if items == nil {
			items = []any{}
		}

		return map[string]any{key: items}, nil
	}
}

func flag(key string) func(bool) (map[string]any, error) {
	return func(ok bool) (map[string]any, error) {
		return map[string]any{key: ok}, nil
	}
}

func text(key string) func(string) (map[string]any, error) {
	return func(s string) (map[string]any, error) {
		return map[string]any{key: s}, nil
	}
}

func objectRecord(c *call, res any) (*domain.OutboundRecord, error) {
	out, err := object(res)
	if err != nil {
		return nil, err
	}

	record := domain.NewRecord(c.index, out)
	return &record, nil
}

func flagRecord(c *call, key string, ok bool) *domain.OutboundRecord {
	record := domain.NewRecord(c.index, map[string]any{key: ok})
	return &record
}
