package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-webhooks/core"
)

const invalidJSONNotification = `Hi there! It looks like you tried to set up the %s integration,
but didn't correctly configure the webhook to send data in the JSON format
that this integration expects!`

// SetupMessage renders the confirmation content sent when an integration
// webhook is configured, optionally crediting the configuring user.
func SetupMessage(integration string, userName string) string {
	content := fmt.Sprintf("%s webhook has been successfully configured", integration)
	if userName != "" {
		content += fmt.Sprintf(" by %s", userName)
	}
	return content + "."
}

// NotifyInvalidJSON tells the bot owner that the third-party service was
// configured to send a payload format the integration cannot parse.
func NotifyInvalidJSON(ctx context.Context, notifier core.OwnerNotifier, bot core.Bot, webhookName string) error {
	if notifier == nil {
		return core.NewInternalError("dispatch: owner notifier is required", nil)
	}
	content := strings.TrimSpace(fmt.Sprintf(invalidJSONNotification, webhookName))
	return notifier.Notify(ctx, bot, content)
}
