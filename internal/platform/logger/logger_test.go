package logger

import "testing"

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	kv := sanitizeKVs([]interface{}{
		"dsn", "postgres://u:p@host/db",
		"api_key", "abc",
		"hint_tokens", 300,
		"theme", "space",
	})
	if len(kv) != 8 {
		t.Fatalf("unexpected length: %d", len(kv))
	}
	if kv[1] != "[REDACTED]" || kv[3] != "[REDACTED]" {
		t.Fatalf("expected secrets redacted, got %v", kv)
	}
	if kv[5] != 300 {
		t.Fatalf("hint_tokens should pass through, got %v", kv[5])
	}
	if kv[7] != "space" {
		t.Fatalf("theme should pass through, got %v", kv[7])
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	kv := sanitizeKVs([]interface{}{"theme", "x", "dangling"})
	if len(kv) != 3 || kv[2] != "dangling" {
		t.Fatalf("unexpected result: %v", kv)
	}
}
