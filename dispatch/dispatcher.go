package dispatch

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-webhooks/core"
	"github.com/goliatone/go-webhooks/events"
)

const (
	RouteDirect  = "direct"
	RouteChannel = "channel"
)

// Request carries one formatted webhook message and its routing
// configuration. Channel may be a channel name or a decimal channel ID;
// when empty the message goes to the bot owner as a direct message.
// EventType, Only and Exclude feed the event filter; an empty EventType
// disables filtering for this request.
type Request struct {
	Bot                core.Bot
	Body               string
	Topic              string
	EventType          string
	Channel            string
	UserSpecifiedTopic string
	Only               []string
	Exclude            []string
	// UnquoteURLParameters decodes percent-escapes in channel and topic.
	// Some services double-escape their URLs, leaving %20 in values that
	// were meant to be spaces.
	UnquoteURLParameters bool
}

// Result reports what a dispatch did. SuppressedMissingChannel marks the
// deliberate discard of a channel-not-found delivery failure.
type Result struct {
	DispatchID               string
	Route                    string
	Delivered                bool
	Skipped                  bool
	SuppressedMissingChannel bool
}

type Dispatcher struct {
	Sender  core.MessageSender
	Logger  core.Logger
	Metrics core.MetricsRecorder
}

func NewDispatcher(sender core.MessageSender) *Dispatcher {
	return &Dispatcher{
		Sender:  sender,
		Metrics: core.NopMetricsRecorder{},
	}
}

// Dispatch filters, routes and sends one webhook message. Filtered events
// and suppressed missing-channel failures both return a nil error; the
// Result flags distinguish them from a delivery.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Result, error) {
	if d == nil || d.Sender == nil {
		return Result{}, core.NewInternalError("dispatch: message sender is required", nil)
	}
	if strings.TrimSpace(req.Bot.ID) == "" {
		return Result{}, core.NewBadInputError("dispatch: bot id is required", nil)
	}

	result := Result{DispatchID: uuid.NewString()}
	fields := map[string]any{
		"dispatch_id": result.DispatchID,
		"bot_id":      req.Bot.ID,
		"event_type":  req.EventType,
	}

	if req.EventType != "" {
		allowed, err := events.ShouldProcess(req.EventType, req.Only, req.Exclude)
		if err != nil {
			return Result{}, err
		}
		if !allowed {
			result.Skipped = true
			d.observe(ctx, "skipped", nil, fields)
			return result, nil
		}
	}

	if strings.TrimSpace(req.Channel) == "" {
		result.Route = RouteDirect
		fields["route"] = RouteDirect
		if err := d.Sender.SendDirectMessage(ctx, req.Bot, req.Bot.Owner, req.Body); err != nil {
			d.observe(ctx, "failed", err, fields)
			return Result{}, core.WrapError(
				err,
				goerrors.CategoryOperation,
				"dispatch: direct message delivery failed",
				http.StatusBadGateway,
				core.WebhookErrorInternal,
				map[string]any{"dispatch_id": result.DispatchID, "bot_id": req.Bot.ID},
			)
		}
		result.Delivered = true
		d.observe(ctx, "delivered", nil, fields)
		return result, nil
	}

	channel := req.Channel
	topic := req.Topic
	if req.UnquoteURLParameters {
		channel = unquote(channel)
	}
	if req.UserSpecifiedTopic != "" {
		topic = req.UserSpecifiedTopic
		if req.UnquoteURLParameters {
			topic = unquote(topic)
		}
	}

	result.Route = RouteChannel
	fields["route"] = RouteChannel
	fields["channel"] = channel

	var sendErr error
	if channelID, ok := decimalChannelID(channel); ok {
		sendErr = d.Sender.SendChannelMessageByID(ctx, req.Bot, channelID, topic, req.Body)
	} else {
		sendErr = d.Sender.SendChannelMessage(ctx, req.Bot, channel, topic, req.Body)
	}
	if sendErr != nil {
		if core.IsChannelNotFound(sendErr) {
			// the host reports the missing channel to the bot owner
			// through its own notification path
			result.SuppressedMissingChannel = true
			d.observe(ctx, "suppressed_missing_channel", nil, fields)
			return result, nil
		}
		d.observe(ctx, "failed", sendErr, fields)
		return Result{}, core.WrapError(
			sendErr,
			goerrors.CategoryOperation,
			"dispatch: channel message delivery failed",
			http.StatusBadGateway,
			core.WebhookErrorInternal,
			map[string]any{"dispatch_id": result.DispatchID, "bot_id": req.Bot.ID, "channel": channel},
		)
	}
	result.Delivered = true
	d.observe(ctx, "delivered", nil, fields)
	return result, nil
}

// unquote decodes percent-escapes, keeping the raw value when the escape
// sequence is malformed so delivery still happens.
func unquote(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}

func decimalChannelID(channel string) (int64, bool) {
	if channel == "" {
		return 0, false
	}
	for _, r := range channel {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(channel, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (d *Dispatcher) observe(ctx context.Context, status string, err error, fields map[string]any) {
	tags := map[string]string{"status": status}
	if route, ok := fields["route"].(string); ok {
		tags["route"] = route
	}
	if d.Metrics != nil {
		d.Metrics.IncCounter(ctx, "webhooks.dispatch.total", 1, tags)
	}

	if d.Logger == nil {
		return
	}
	logger := d.Logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	logFields := core.RedactSensitiveMap(fields)
	logFields["status"] = status
	if err != nil {
		logFields["error"] = err.Error()
	}
	if fieldsLogger, ok := logger.(core.FieldsLogger); ok {
		logger = fieldsLogger.WithFields(logFields)
	}
	if err != nil {
		logger.Error("webhook dispatch " + status)
		return
	}
	logger.Info("webhook dispatch " + status)
}
