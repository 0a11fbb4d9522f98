package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestNewChannelNotFoundError_Envelope(t *testing.T) {
	err := NewChannelNotFoundError("alerts")
	if err == nil {
		t.Fatalf("expected error")
	}

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryNotFound {
		t.Fatalf("expected not-found category, got %q", rich.Category)
	}
	if rich.Code != http.StatusNotFound {
		t.Fatalf("expected %d code, got %d", http.StatusNotFound, rich.Code)
	}
	if rich.TextCode != WebhookErrorChannelNotFound {
		t.Fatalf("expected %q text code, got %q", WebhookErrorChannelNotFound, rich.TextCode)
	}
	if !IsChannelNotFound(err) {
		t.Fatalf("expected IsChannelNotFound to classify the error")
	}
}

func TestIsChannelNotFound_SeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("send failed: %w", NewChannelNotFoundError("alerts"))
	if !IsChannelNotFound(err) {
		t.Fatalf("expected classification through wrapped error")
	}
	if IsChannelNotFound(errors.New("send failed")) {
		t.Fatalf("expected plain error not to classify")
	}
	if IsChannelNotFound(nil) {
		t.Fatalf("expected nil not to classify")
	}
}

func TestNewMissingHeaderError_CarriesHeaderName(t *testing.T) {
	err := NewMissingHeaderError("X-Event-Key")
	if !IsMissingHeader(err) {
		t.Fatalf("expected missing-header classification")
	}
	if !strings.Contains(err.Error(), "X-Event-Key") {
		t.Fatalf("expected header name in message, got %q", err.Error())
	}

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope")
	}
	if rich.Metadata["header"] != "X-Event-Key" {
		t.Fatalf("expected header metadata, got %#v", rich.Metadata)
	}
}

func TestKindPredicates_DoNotCrossMatch(t *testing.T) {
	mismatch := NewError(
		"signature verification failed",
		goerrors.CategoryAuth,
		http.StatusUnauthorized,
		WebhookErrorSignatureMismatch,
		nil,
	)
	if !IsSignatureMismatch(mismatch) {
		t.Fatalf("expected signature-mismatch classification")
	}
	if IsChannelNotFound(mismatch) || IsMissingHeader(mismatch) || IsMissingSecret(mismatch) {
		t.Fatalf("expected no cross-classification")
	}
}
