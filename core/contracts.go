package core

import (
	"context"

	glog "github.com/goliatone/go-logger/glog"
)

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

// Bot identifies the integration bot a webhook was addressed to. Owner is
// the user that receives out-of-band notifications and fallback direct
// messages.
type Bot struct {
	ID    string
	Name  string
	Owner string
}

// WebhookRequest is the input surface a hosting handler passes into the
// library: headers arrive with arbitrary casing and delimiters, the secret
// arrives through the generated URL's query parameters, and the signature
// through whatever custom header the third-party service uses.
type WebhookRequest struct {
	Path      string
	Headers   map[string]string
	Body      []byte
	Query     map[string]string
	Secret    string
	Signature string
}

// MessageSender delivers the formatted webhook message into the host chat
// system. A sender reports a missing channel with an error classified by
// IsChannelNotFound; the dispatcher inspects and discards that case.
type MessageSender interface {
	SendDirectMessage(ctx context.Context, bot Bot, recipient string, body string) error
	SendChannelMessage(ctx context.Context, bot Bot, channel string, topic string, body string) error
	SendChannelMessageByID(ctx context.Context, bot Bot, channelID int64, topic string, body string) error
}

// OwnerNotifier sends an out-of-band notification to the bot owner. Rate
// limiting of these sends is the host's responsibility.
type OwnerNotifier interface {
	Notify(ctx context.Context, bot Bot, content string) error
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
}

type NopMetricsRecorder struct{}

func (NopMetricsRecorder) IncCounter(context.Context, string, int64, map[string]string) {}

var _ MetricsRecorder = NopMetricsRecorder{}
