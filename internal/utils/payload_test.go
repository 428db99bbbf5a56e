package utils

import (
	"encoding/base64"
	"testing"
)

func TestDecodeFilePayload(t *testing.T) {
	body := base64.StdEncoding.EncodeToString([]byte("hello world"))

	tests := []struct {
		name     string
		payload  string
		fileName string
		wantExt  string
		wantErr  bool
	}{
		{"data url with mime", "data:text/markdown;base64," + body, "", "md", false},
		{"file name wins", "data:text/plain;base64," + body, "notes.TXT", "txt", false},
		{"plain base64 falls back to sniffing", body, "", "txt", false},
		{"empty payload", "   ", "", "", true},
		{"broken base64", "data:text/plain;base64,!!!", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ext, err := DecodeFilePayload(tt.payload, tt.fileName)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if string(data) != "hello world" {
				t.Errorf("unexpected data: %q", data)
			}
			if ext != tt.wantExt {
				t.Errorf("expected ext %q, got %q", tt.wantExt, ext)
			}
		})
	}
}

func TestExtensionFromMime(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"text/plain; charset=utf-8", "txt"},
		{"application/pdf", "pdf"},
		{"audio/mpeg", "mp3"},
		{"video/mp4", "mp4"},
		{"application/x-unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtensionFromMime(tt.mime); got != tt.want {
			t.Errorf("ExtensionFromMime(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func TestGenerateUUID(t *testing.T) {
	first := GenerateUUID()
	second := GenerateUUID()
	if first == "" || first == second {
		t.Errorf("expected distinct non-empty ids, got %q and %q", first, second)
	}
}
