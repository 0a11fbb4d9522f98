package core

import (
	"fmt"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

const (
	WebhookErrorBadInput             = "WEBHOOKS_BAD_INPUT"
	WebhookErrorMissingHeader        = "WEBHOOKS_MISSING_HEADER"
	WebhookErrorUnsupportedAlgorithm = "WEBHOOKS_UNSUPPORTED_ALGORITHM"
	WebhookErrorMissingSecret        = "WEBHOOKS_MISSING_SECRET"
	WebhookErrorSignatureMismatch    = "WEBHOOKS_SIGNATURE_MISMATCH"
	WebhookErrorMalformedTimestamp   = "WEBHOOKS_MALFORMED_TIMESTAMP"
	WebhookErrorMalformedMultipart   = "WEBHOOKS_MALFORMED_MULTIPART"
	WebhookErrorChannelNotFound      = "WEBHOOKS_CHANNEL_NOT_FOUND"
	WebhookErrorInternal             = "WEBHOOKS_INTERNAL_ERROR"
)

func NewError(
	message string,
	category goerrors.Category,
	code int,
	textCode string,
	metadata map[string]any,
) error {
	err := goerrors.New(message, category).
		WithCode(code).
		WithTextCode(textCode)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func WrapError(
	source error,
	category goerrors.Category,
	message string,
	code int,
	textCode string,
	metadata map[string]any,
) error {
	if source == nil {
		return NewError(message, category, code, textCode, metadata)
	}
	err := goerrors.Wrap(source, category, message).
		WithCode(code).
		WithTextCode(textCode)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func NewBadInputError(message string, metadata map[string]any) error {
	return NewError(message, goerrors.CategoryBadInput, http.StatusBadRequest, WebhookErrorBadInput, metadata)
}

func NewInternalError(message string, metadata map[string]any) error {
	return NewError(message, goerrors.CategoryInternal, http.StatusInternalServerError, WebhookErrorInternal, metadata)
}

func NewMissingHeaderError(header string) error {
	return NewError(
		fmt.Sprintf("Missing the HTTP event header '%s'", header),
		goerrors.CategoryBadInput,
		http.StatusBadRequest,
		WebhookErrorMissingHeader,
		map[string]any{"header": header},
	)
}

// NewChannelNotFoundError is how MessageSender implementations report a send
// to a channel that does not exist. The dispatcher classifies the failure
// through IsChannelNotFound and discards it.
func NewChannelNotFoundError(channel string) error {
	return NewError(
		fmt.Sprintf("Channel '%s' does not exist", channel),
		goerrors.CategoryNotFound,
		http.StatusNotFound,
		WebhookErrorChannelNotFound,
		map[string]any{"channel": channel},
	)
}

func IsChannelNotFound(err error) bool {
	return hasTextCode(err, WebhookErrorChannelNotFound)
}

func IsMissingHeader(err error) bool {
	return hasTextCode(err, WebhookErrorMissingHeader)
}

func IsSignatureMismatch(err error) bool {
	return hasTextCode(err, WebhookErrorSignatureMismatch)
}

func IsUnsupportedAlgorithm(err error) bool {
	return hasTextCode(err, WebhookErrorUnsupportedAlgorithm)
}

func IsMissingSecret(err error) bool {
	return hasTextCode(err, WebhookErrorMissingSecret)
}

func IsMalformedTimestamp(err error) bool {
	return hasTextCode(err, WebhookErrorMalformedTimestamp)
}

func IsMalformedMultipart(err error) bool {
	return hasTextCode(err, WebhookErrorMalformedMultipart)
}

func hasTextCode(err error, textCode string) bool {
	if err == nil {
		return false
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == textCode
}
