package domain

import "fmt"

type Resource string

const (
	ResourceBot      Resource = "bot"
	ResourceMessage  Resource = "message"
	ResourceCallback Resource = "callback"
	ResourceChat     Resource = "chat"
	ResourcePayment  Resource = "payment"
	ResourceSticker  Resource = "sticker"
	ResourceFile     Resource = "file"
)

type Operation string

const (
	OpGetMe  Operation = "getMe"
	OpLogOut Operation = "logOut"
	OpClose  Operation = "close"

	OpSendMessage     Operation = "sendMessage"
	OpEditMessageText Operation = "editMessageText"
	OpDeleteMessage   Operation = "deleteMessage"
	OpCopyMessage     Operation = "copyMessage"
	OpForwardMessage  Operation = "forwardMessage"
	OpSendDocument    Operation = "sendDocument"
	OpSendPhoto       Operation = "sendPhoto"
	OpSendAudio       Operation = "sendAudio"
	OpSendVoice       Operation = "sendVoice"
	OpSendVideo       Operation = "sendVideo"
	OpSendAnimation   Operation = "sendAnimation"
	OpSendSticker     Operation = "sendSticker"
	OpSendMediaGroup  Operation = "sendMediaGroup"
	OpSendLocation    Operation = "sendLocation"
	OpSendChatAction  Operation = "sendChatAction"
	OpSendContact     Operation = "sendContact"

	OpAnswerQuery       Operation = "answerQuery"
	OpAnswerInlineQuery Operation = "answerInlineQuery"

	OpGetChat               Operation = "getChat"
	OpGetChatAdministrators Operation = "getChatAdministrators"
	OpGetChatMember         Operation = "getChatMember"
	OpGetChatMembersCount   Operation = "getChatMembersCount"
	OpBanChatMember         Operation = "banChatMember"
	OpUnbanChatMember       Operation = "unbanChatMember"
	OpPromoteChatMember     Operation = "promoteChatMember"
	OpLeaveChat             Operation = "leaveChat"
	OpSetChatTitle          Operation = "setChatTitle"
	OpSetChatDescription    Operation = "setChatDescription"
	OpSetChatPhoto          Operation = "setChatPhoto"
	OpDeleteChatPhoto       Operation = "deleteChatPhoto"
	OpPinChatMessage        Operation = "pinChatMessage"
	OpUnpinChatMessage      Operation = "unpinChatMessage"
	OpExportChatInviteLink  Operation = "exportChatInviteLink"

	OpSendInvoice            Operation = "sendInvoice"
	OpAnswerPreCheckoutQuery Operation = "answerPreCheckoutQuery"
	OpInquireTransaction     Operation = "inquireTransaction"

	OpGetStickerSet       Operation = "getStickerSet"
	OpCreateNewStickerSet Operation = "createNewStickerSet"
	OpAddStickerToSet     Operation = "addStickerToSet"

	OpGetFile      Operation = "getFile"
	OpDownloadFile Operation = "download"
)

// Action identifies one (resource, operation) pair.
type Action struct {
	Resource  Resource
	Operation Operation
}

func (a Action) String() string {
	return fmt.Sprintf("%s:%s", a.Resource, a.Operation)
}

var actions = []Action{
	{ResourceBot, OpGetMe},
	{ResourceBot, OpLogOut},
	{ResourceBot, OpClose},

	{ResourceMessage, OpSendMessage},
	{ResourceMessage, OpEditMessageText},
	{ResourceMessage, OpDeleteMessage},
	{ResourceMessage, OpCopyMessage},
	{ResourceMessage, OpForwardMessage},
	{ResourceMessage, OpSendDocument},
	{ResourceMessage, OpSendPhoto},
	{ResourceMessage, OpSendAudio},
	{ResourceMessage, OpSendVoice},
	{ResourceMessage, OpSendVideo},
	{ResourceMessage, OpSendAnimation},
	{ResourceMessage, OpSendSticker},
	{ResourceMessage, OpSendMediaGroup},
	{ResourceMessage, OpSendLocation},
	{ResourceMessage, OpSendChatAction},
	{ResourceMessage, OpSendContact},

	{ResourceCallback, OpAnswerQuery},
	{ResourceCallback, OpAnswerInlineQuery},

	{ResourceChat, OpGetChat},
	{ResourceChat, OpGetChatAdministrators},
	{ResourceChat, OpGetChatMember},
	{ResourceChat, OpGetChatMembersCount},
	{ResourceChat, OpBanChatMember},
	{ResourceChat, OpUnbanChatMember},
	{ResourceChat, OpPromoteChatMember},
	{ResourceChat, OpLeaveChat},
	{ResourceChat, OpSetChatTitle},
	{ResourceChat, OpSetChatDescription},
	{ResourceChat, OpSetChatPhoto},
	{ResourceChat, OpDeleteChatPhoto},
	{ResourceChat, OpPinChatMessage},
	{ResourceChat, OpUnpinChatMessage},
	{ResourceChat, OpExportChatInviteLink},

	{ResourcePayment, OpSendInvoice},
	{ResourcePayment, OpAnswerPreCheckoutQuery},
	{ResourcePayment, OpInquireTransaction},

	{ResourceSticker, OpGetStickerSet},
	{ResourceSticker, OpCreateNewStickerSet},
	{ResourceSticker, OpAddStickerToSet},

	{ResourceFile, OpGetFile},
	{ResourceFile, OpDownloadFile},
}

// Actions lists every supported (resource, operation) pair.
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// IsKnown reports whether the pair is part of the supported set.
func (a Action) IsKnown() bool {
	for _, known := range actions {
		if known == a {
			return true
		}
	}

	return false
}
