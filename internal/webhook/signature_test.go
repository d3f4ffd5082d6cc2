package webhook

import (
	"strings"
	"testing"
)

func TestSignVerify_RoundTrip(t *testing.T) {
	payload := []byte(`{"action":"opened","number":42}`)
	sig := Sign(payload, "s3cr3t")

	if !strings.HasPrefix(sig, "sha256=") || len(sig) != len("sha256=")+64 {
		t.Fatalf("Sign() = %q", sig)
	}
	if sig != strings.ToLower(sig) {
		t.Errorf("Sign() must be lowercase hex: %q", sig)
	}
	if !VerifySignature(payload, sig, "s3cr3t") {
		t.Fatal("VerifySignature() rejected its own signature")
	}
}

func TestVerifySignature_ByteFlipRejects(t *testing.T) {
	payload := []byte(`{"action":"opened","number":42}`)
	sig := Sign(payload, "s3cr3t")

	for i := range payload {
		flipped := append([]byte(nil), payload...)
		flipped[i] ^= 0x01
		if VerifySignature(flipped, sig, "s3cr3t") {
			t.Fatalf("payload flip at byte %d accepted", i)
		}
	}

	secret := []byte("s3cr3t")
	for i := range secret {
		flipped := append([]byte(nil), secret...)
		flipped[i] ^= 0x01
		if VerifySignature(payload, sig, string(flipped)) {
			t.Fatalf("secret flip at byte %d accepted", i)
		}
	}
}

func TestVerifySignature_Malformed(t *testing.T) {
	payload := []byte("x")
	good := Sign(payload, "k")

	for _, sig := range []string{
		"",
		strings.TrimPrefix(good, "sha256="),
		"sha1=" + strings.TrimPrefix(good, "sha256="),
		"sha256=zz",
		strings.ToUpper(good[:7]) + good[7:],
	} {
		if VerifySignature(payload, sig, "k") {
			t.Errorf("VerifySignature(%q) accepted", sig)
		}
	}
}
