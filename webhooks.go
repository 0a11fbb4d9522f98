// Package webhooks wires the webhook processing pipeline: header
// canonicalization, event filtering, signature verification, multipart
// form parsing and message dispatch.
package webhooks

import (
	"github.com/goliatone/go-webhooks/command"
	"github.com/goliatone/go-webhooks/core"
	"github.com/goliatone/go-webhooks/dispatch"
	"github.com/goliatone/go-webhooks/events"
	"github.com/goliatone/go-webhooks/formdata"
	"github.com/goliatone/go-webhooks/headers"
	"github.com/goliatone/go-webhooks/signature"
)

type Config = core.Config

type Bot = core.Bot
type WebhookRequest = core.WebhookRequest

type MessageSender = core.MessageSender
type OwnerNotifier = core.OwnerNotifier
type MetricsRecorder = core.MetricsRecorder

type Logger = core.Logger
type FieldsLogger = core.FieldsLogger
type LoggerProvider = core.LoggerProvider

type Dispatcher = dispatch.Dispatcher
type DispatchRequest = dispatch.Request
type DispatchResult = dispatch.Result

type SignatureVerifier = signature.Verifier

type HeaderExtractor = headers.Extractor
type FixtureRegistry = headers.FixtureRegistry
type DeriveFunc = headers.DeriveFunc

type EventFilter = events.FilterSpec

var (
	CanonicalizeHeaders    = headers.Canonicalize
	LookupHeader           = headers.Lookup
	FromFilename           = headers.FromFilename
	ShouldProcess          = events.ShouldProcess
	ParseMultipartString   = formdata.ParseString
	SetupMessage           = dispatch.SetupMessage
	NotifyInvalidJSON      = dispatch.NotifyInvalidJSON
	UnixMillisecondsToTime = core.UnixMillisecondsToTime
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

func NewFixtureRegistry() *FixtureRegistry {
	return headers.NewFixtureRegistry()
}

// Commands exposes the pipeline operations as go-command handlers for
// hosts that route work through a command bus.
type Commands struct {
	DispatchMessage *command.DispatchMessageCommand
	NotifyOwner     *command.NotifyOwnerCommand
}

// Pipeline bundles the configured pipeline components behind one
// constructor so hosts wire a sender and a notifier and get a working
// set back.
type Pipeline struct {
	config     Config
	verifier   SignatureVerifier
	dispatcher *Dispatcher
	extractor  *HeaderExtractor
	registry   *FixtureRegistry
	commands   Commands
}

type Option func(*pipelineOptions)

type pipelineOptions struct {
	logger   Logger
	metrics  MetricsRecorder
	registry *FixtureRegistry
}

func WithLogger(logger Logger) Option {
	return func(options *pipelineOptions) {
		options.logger = logger
	}
}

func WithMetricsRecorder(metrics MetricsRecorder) Option {
	return func(options *pipelineOptions) {
		options.metrics = metrics
	}
}

func WithFixtureRegistry(registry *FixtureRegistry) Option {
	return func(options *pipelineOptions) {
		options.registry = registry
	}
}

func New(cfg Config, sender MessageSender, notifier OwnerNotifier, opts ...Option) (*Pipeline, error) {
	if sender == nil {
		return nil, core.NewInternalError("webhooks: message sender is required", nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := pipelineOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&options)
	}

	registry := options.registry
	if registry == nil {
		registry = headers.NewFixtureRegistry()
	}

	dispatcher := dispatch.NewDispatcher(sender)
	dispatcher.Logger = options.logger
	if options.metrics != nil {
		dispatcher.Metrics = options.metrics
	}

	extractor := headers.NewExtractor(notifier, cfg)
	if options.logger != nil {
		extractor.Logger = options.logger
	}

	pipeline := &Pipeline{
		config:     cfg,
		verifier:   signature.New(cfg),
		dispatcher: dispatcher,
		extractor:  extractor,
		registry:   registry,
	}
	pipeline.commands = Commands{
		DispatchMessage: command.NewDispatchMessageCommand(dispatcher),
	}
	if notifier != nil {
		pipeline.commands.NotifyOwner = command.NewNotifyOwnerCommand(notifier)
	}
	return pipeline, nil
}

func (p *Pipeline) Config() Config {
	if p == nil {
		return Config{}
	}
	return p.config
}

func (p *Pipeline) Verifier() SignatureVerifier {
	if p == nil {
		return SignatureVerifier{}
	}
	return p.verifier
}

func (p *Pipeline) Dispatcher() *Dispatcher {
	if p == nil {
		return nil
	}
	return p.dispatcher
}

func (p *Pipeline) Extractor() *HeaderExtractor {
	if p == nil {
		return nil
	}
	return p.extractor
}

func (p *Pipeline) Registry() *FixtureRegistry {
	if p == nil {
		return nil
	}
	return p.registry
}

func (p *Pipeline) Commands() Commands {
	if p == nil {
		return Commands{}
	}
	return p.commands
}
