package media

import (
	"regexp"
	"strings"
	"testing"
)

var safeName = regexp.MustCompile(`^[A-Za-z0-9_.-]*$`)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "emoji and punctuation", in: "bom dia 😀!!.png", want: "bom_dia_.png"},
		{name: "whitespace runs", in: "a   b\tc.pdf", want: "a_b_c.pdf"},
		{name: "underscore runs", in: "a___b.txt", want: "a_b.txt"},
		{name: "already clean", in: "invoice-2024.pdf", want: "invoice-2024.pdf"},
		{name: "only unsafe chars", in: "😀@#$%", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeFileName(tc.in)
			if got != tc.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if !safeName.MatchString(got) {
				t.Fatalf("sanitized name %q contains unsafe characters", got)
			}
			if strings.Contains(got, "__") {
				t.Fatalf("sanitized name %q contains underscore run", got)
			}
		})
	}
}

var keyPattern = regexp.MustCompile(`^messages/\d{13}_[0-9a-f]{8}(_[A-Za-z0-9_.-]+)?\.[A-Za-z0-9-]+$`)

func TestComposeKeyWithFileName(t *testing.T) {
	key := ComposeKey("bom dia 😀!!.png", "png")
	if !keyPattern.MatchString(key) {
		t.Fatalf("key %q does not match expected shape", key)
	}
	if !strings.Contains(key, "_bom_dia_") {
		t.Fatalf("key %q lost the sanitized base name", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Fatalf("key %q missing extension", key)
	}
}

func TestComposeKeyWithoutFileName(t *testing.T) {
	key := ComposeKey("", "mp3")
	if !keyPattern.MatchString(key) {
		t.Fatalf("key %q does not match expected shape", key)
	}
	if !strings.HasSuffix(key, ".mp3") {
		t.Fatalf("key %q missing extension", key)
	}
}

func TestComposeKeyUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key := ComposeKey("photo.jpg", "jpg")
		if seen[key] {
			t.Fatalf("duplicate key composed: %q", key)
		}
		seen[key] = true
	}
}
