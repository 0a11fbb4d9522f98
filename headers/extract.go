package headers

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-webhooks/core"
)

const missingHeaderNotification = `Hi there!  Your bot %s just sent an HTTP request to %s that
is missing the HTTP %s header.  Because this header is how
%s indicates the event type, this usually indicates a configuration
issue, where you either entered the URL for a different integration, or are running
an older version of the third-party service that doesn't provide that header.
Contact %s if you need help debugging!`

// MissingHeaderNotification renders the owner-facing message sent when an
// integration-required header is absent from a request.
func MissingHeaderNotification(botName, requestPath, header, integration, supportEmail string) string {
	return fmt.Sprintf(missingHeaderNotification, botName, requestPath, header, integration, supportEmail)
}

// Extractor looks required headers up in inbound requests. A missing header
// is reported to the bot owner out-of-band before the typed failure is
// returned; the notification is content only, rate limiting stays with the
// host notifier.
type Extractor struct {
	Notifier     core.OwnerNotifier
	SupportEmail string
	Logger       core.Logger
}

func NewExtractor(notifier core.OwnerNotifier, cfg core.Config) *Extractor {
	return &Extractor{
		Notifier:     notifier,
		SupportEmail: strings.TrimSpace(cfg.SupportEmail),
	}
}

func (e *Extractor) Extract(
	ctx context.Context,
	bot core.Bot,
	req core.WebhookRequest,
	header string,
	integration string,
) (string, error) {
	if e == nil {
		return "", core.NewInternalError("headers: extractor is nil", nil)
	}
	header = strings.TrimSpace(header)
	if header == "" {
		return "", core.NewBadInputError("headers: header name is required", nil)
	}

	if value, ok := Lookup(req.Headers, header); ok {
		return value, nil
	}

	if e.Notifier != nil {
		content := MissingHeaderNotification(bot.Name, req.Path, header, integration, e.SupportEmail)
		if err := e.Notifier.Notify(ctx, bot, content); err != nil {
			// the owner notification is best effort; the caller still
			// needs the missing-header failure
			e.logWarn(ctx, "headers: owner notification failed", map[string]any{
				"header":      header,
				"integration": integration,
				"error":       err.Error(),
			})
		}
	}

	return "", core.NewMissingHeaderError(header)
}

func (e *Extractor) logWarn(ctx context.Context, message string, fields map[string]any) {
	if e == nil || e.Logger == nil {
		return
	}
	logger := e.Logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	if fieldsLogger, ok := logger.(core.FieldsLogger); ok {
		logger = fieldsLogger.WithFields(core.RedactSensitiveMap(fields))
	}
	logger.Warn(message)
}
