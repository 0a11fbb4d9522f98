package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/goliatone/go-webhooks/core"
)

func hexHMAC(t *testing.T, secret, payload []byte, algorithm string) string {
	t.Helper()
	switch algorithm {
	case "sha256":
		mac := hmac.New(sha256.New, secret)
		mac.Write(payload)
		return hex.EncodeToString(mac.Sum(nil))
	case "sha512":
		mac := hmac.New(sha512.New, secret)
		mac.Write(payload)
		return hex.EncodeToString(mac.Sum(nil))
	default:
		t.Fatalf("unsupported test algorithm %q", algorithm)
		return ""
	}
}

func TestVerify_AcceptsCorrectSignature(t *testing.T) {
	verifier := Verifier{Enforce: true}
	payload := []byte("abc")
	secret := []byte("key")

	expected := hexHMAC(t, secret, payload, "sha256")
	if err := verifier.Verify(payload, secret, expected, "sha256"); err != nil {
		t.Fatalf("verify correct signature: %v", err)
	}
}

func TestVerify_DefaultsToSHA256(t *testing.T) {
	verifier := Verifier{Enforce: true}
	payload := []byte(`{"event":"push"}`)
	secret := []byte("s3cr3t")

	expected := hexHMAC(t, secret, payload, "sha256")
	if err := verifier.Verify(payload, secret, expected, ""); err != nil {
		t.Fatalf("verify with default algorithm: %v", err)
	}
}

func TestVerify_RejectsTamperedSignature(t *testing.T) {
	verifier := Verifier{Enforce: true}
	payload := []byte("abc")
	secret := []byte("key")

	expected := hexHMAC(t, secret, payload, "sha256")
	for i := range expected {
		flipped := []byte(expected)
		if flipped[i] == 'a' {
			flipped[i] = 'b'
		} else {
			flipped[i] = 'a'
		}
		err := verifier.Verify(payload, secret, string(flipped), "sha256")
		if err == nil {
			t.Fatalf("expected mismatch for flipped character at %d", i)
		}
		if !core.IsSignatureMismatch(err) {
			t.Fatalf("expected signature-mismatch classification, got %v", err)
		}
	}
}

func TestVerify_ComparisonIsCaseSensitive(t *testing.T) {
	verifier := Verifier{Enforce: true}
	payload := []byte("abc")
	secret := []byte("key")

	upper := strings.ToUpper(hexHMAC(t, secret, payload, "sha256"))
	if err := verifier.Verify(payload, secret, upper, "sha256"); err == nil {
		t.Fatalf("expected upper-cased signature to be rejected")
	}
}

func TestVerify_UnsupportedAlgorithm(t *testing.T) {
	verifier := Verifier{Enforce: true}
	err := verifier.Verify([]byte("abc"), []byte("key"), "deadbeef", "notreal")
	if err == nil {
		t.Fatalf("expected unsupported-algorithm failure")
	}
	if !core.IsUnsupportedAlgorithm(err) {
		t.Fatalf("expected unsupported-algorithm classification, got %v", err)
	}
}

func TestVerify_MissingSecret(t *testing.T) {
	verifier := Verifier{Enforce: true}
	err := verifier.Verify([]byte("abc"), nil, "deadbeef", "sha256")
	if err == nil {
		t.Fatalf("expected missing-secret failure")
	}
	if !core.IsMissingSecret(err) {
		t.Fatalf("expected missing-secret classification, got %v", err)
	}
	if strings.Contains(err.Error(), "abc") {
		t.Fatalf("payload leaked into error message: %q", err.Error())
	}
}

func TestVerify_DisabledIsNoOp(t *testing.T) {
	verifier := New(core.Config{VerifySignatures: false})
	// nothing is validated when enforcement is off, including the
	// algorithm and the secret
	if err := verifier.Verify([]byte("abc"), nil, "garbage", "notreal"); err != nil {
		t.Fatalf("expected disabled verifier to succeed, got %v", err)
	}
}

func TestVerify_SHA512(t *testing.T) {
	verifier := Verifier{Enforce: true}
	payload := []byte("payload")
	secret := []byte("key")

	expected := hexHMAC(t, secret, payload, "sha512")
	if err := verifier.Verify(payload, secret, expected, "sha512"); err != nil {
		t.Fatalf("verify sha512 signature: %v", err)
	}
}

func TestAlgorithms_Sorted(t *testing.T) {
	names := Algorithms()
	if len(names) == 0 {
		t.Fatalf("expected supported algorithms")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("expected sorted unique algorithms, got %#v", names)
		}
	}
	for _, required := range []string{"sha1", "sha256", "sha512"} {
		found := false
		for _, name := range names {
			if name == required {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %q among supported algorithms", required)
		}
	}
}
