package service

import (
	"slices"

	"github.com/rs/zerolog/log"
)

type Authorizer interface {
	IsAuthorized(chatID int64) bool
}

// ChatAuthorizer admits events from the configured chats. An empty list
// admits every chat.
type ChatAuthorizer struct {
	allowlist []int64
}

func NewChatAuthorizer(allowlist []int64) *ChatAuthorizer {
	return &ChatAuthorizer{allowlist: allowlist}
}

func (a *ChatAuthorizer) IsAuthorized(chatID int64) bool {
	if len(a.allowlist) == 0 || slices.Contains(a.allowlist, chatID) {
		return true
	}

	log.Debug().Int64("chat_id", chatID).Msg("chat not in allowlist")

	return false
}
