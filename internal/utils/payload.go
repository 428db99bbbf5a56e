package utils

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
)

// SplitDataURL splits a data URL into its MIME type and base64 body.
// Plain base64 input is passed through with an empty MIME type.
func SplitDataURL(value string) (string, string) {
	if !strings.HasPrefix(value, "data:") {
		return "", value
	}

	value = strings.TrimPrefix(value, "data:")
	parts := strings.SplitN(value, ";base64,", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

// DecodeFilePayload decodes an inline base64 or data URL payload and
// returns the raw bytes together with a guessed file extension. The
// optional fileName wins the extension guess when it carries one.
func DecodeFilePayload(payload, fileName string) ([]byte, string, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil, "", fmt.Errorf("empty file payload")
	}

	mimeType, base64Payload := SplitDataURL(trimmed)
	base64Payload = strings.TrimSpace(base64Payload)
	if base64Payload == "" {
		return nil, "", fmt.Errorf("empty base64 payload")
	}

	data, err := base64.StdEncoding.DecodeString(base64Payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}

	ext := ExtensionFromFileName(fileName)
	if ext == "" {
		ext = ExtensionFromMime(mimeType)
	}
	if ext == "" {
		ext = ExtensionFromMime(http.DetectContentType(data))
	}
	if ext == "" {
		ext = "bin"
	}

	return data, ext, nil
}

// ExtensionFromFileName returns the lowercased extension without the
// leading dot, or empty when the name carries none.
func ExtensionFromFileName(name string) string {
	ext := strings.TrimPrefix(path.Ext(strings.TrimSpace(name)), ".")
	return strings.ToLower(ext)
}

// ExtensionFromMime maps a MIME type to a file extension for the
// content kinds EchoForge accepts as source material.
func ExtensionFromMime(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = parsed
	}

	switch strings.ToLower(mimeType) {
	case "text/plain":
		return "txt"
	case "text/markdown":
		return "md"
	case "text/html":
		return "html"
	case "text/csv":
		return "csv"
	case "application/json":
		return "json"
	case "application/pdf":
		return "pdf"
	case "application/msword":
		return "doc"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "docx"
	case "audio/mpeg", "audio/mp3":
		return "mp3"
	case "audio/wav", "audio/x-wav":
		return "wav"
	case "audio/ogg":
		return "ogg"
	case "video/mp4":
		return "mp4"
	case "video/webm":
		return "webm"
	case "video/quicktime":
		return "mov"
	case "image/png":
		return "png"
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return ""
	}
}
