package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[DispatchMessageMessage] = (*DispatchMessageCommand)(nil)
	_ gocmd.Commander[NotifyOwnerMessage]     = (*NotifyOwnerCommand)(nil)
)
