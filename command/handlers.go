package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-webhooks/core"
	"github.com/goliatone/go-webhooks/dispatch"
)

type DispatchingService interface {
	Dispatch(ctx context.Context, req dispatch.Request) (dispatch.Result, error)
}

type NotifyingService interface {
	Notify(ctx context.Context, bot core.Bot, content string) error
}

type DispatchMessageCommand struct {
	service DispatchingService
}

func NewDispatchMessageCommand(service DispatchingService) *DispatchMessageCommand {
	return &DispatchMessageCommand{service: service}
}

func (c *DispatchMessageCommand) Execute(ctx context.Context, msg DispatchMessageMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: dispatch service is required")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	out, err := c.service.Dispatch(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type NotifyOwnerCommand struct {
	service NotifyingService
}

func NewNotifyOwnerCommand(service NotifyingService) *NotifyOwnerCommand {
	return &NotifyOwnerCommand{service: service}
}

func (c *NotifyOwnerCommand) Execute(ctx context.Context, msg NotifyOwnerMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: owner notifier is required")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	return c.service.Notify(ctx, msg.Bot, msg.Content)
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
