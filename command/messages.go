package command

import (
	"strings"

	"github.com/goliatone/go-webhooks/core"
	"github.com/goliatone/go-webhooks/dispatch"
)

const (
	TypeDispatchMessage = "webhooks.command.message.dispatch"
	TypeNotifyOwner     = "webhooks.command.owner.notify"
)

type DispatchMessageMessage struct {
	Request dispatch.Request
}

func (DispatchMessageMessage) Type() string { return TypeDispatchMessage }

func (m DispatchMessageMessage) Validate() error {
	if strings.TrimSpace(m.Request.Bot.ID) == "" {
		return commandValidationError("bot_id", "bot id is required")
	}
	if strings.TrimSpace(m.Request.Body) == "" {
		return commandValidationError("body", "message body is required")
	}
	return nil
}

type NotifyOwnerMessage struct {
	Bot     core.Bot
	Content string
}

func (NotifyOwnerMessage) Type() string { return TypeNotifyOwner }

func (m NotifyOwnerMessage) Validate() error {
	if strings.TrimSpace(m.Bot.ID) == "" {
		return commandValidationError("bot_id", "bot id is required")
	}
	if strings.TrimSpace(m.Content) == "" {
		return commandValidationError("content", "notification content is required")
	}
	return nil
}
