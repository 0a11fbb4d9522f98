// Package signature recomputes and checks HMAC webhook signatures.
package signature

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"net/http"
	"sort"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-webhooks/core"
)

const DefaultAlgorithm = "sha256"

var algorithms = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha224": sha256.New224,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// Verifier checks a supplied signature against the HMAC digest of the raw
// payload. Enforce is the single verification switch: hosts construct one
// verifier from configuration and share it, so turning it off disables
// signature checking everywhere without touching call sites.
type Verifier struct {
	Enforce bool
}

func New(cfg core.Config) Verifier {
	return Verifier{Enforce: cfg.VerifySignatures}
}

// Verify recomputes HMAC(secret, payload, algorithm), renders it as a
// lowercase hex digest, and compares it against signature in constant
// time. The comparison is case-sensitive: an upper-cased hex signature
// does not verify. An empty algorithm means sha256.
//
// Secret material never appears in the returned errors.
func (v Verifier) Verify(payload []byte, secret []byte, signature string, algorithm string) error {
	if !v.Enforce {
		return nil
	}

	name := strings.ToLower(strings.TrimSpace(algorithm))
	if name == "" {
		name = DefaultAlgorithm
	}
	factory, ok := algorithms[name]
	if !ok {
		return core.NewError(
			fmt.Sprintf("The algorithm '%s' is not supported.", name),
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			core.WebhookErrorUnsupportedAlgorithm,
			map[string]any{"algorithm": name},
		)
	}

	if len(secret) == 0 {
		return core.NewError(
			"The webhook secret is missing. Please set the webhook_secret while generating the URL.",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			core.WebhookErrorMissingSecret,
			nil,
		)
	}

	mac := hmac.New(factory, secret)
	_, _ = mac.Write(payload)
	computed := hex.EncodeToString(mac.Sum(nil))

	if subtle.ConstantTimeCompare([]byte(computed), []byte(signature)) != 1 {
		return core.NewError(
			"Webhook signature verification failed.",
			goerrors.CategoryAuth,
			http.StatusUnauthorized,
			core.WebhookErrorSignatureMismatch,
			nil,
		)
	}
	return nil
}

// Algorithms lists the supported algorithm identifiers in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
