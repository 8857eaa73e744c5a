package logger

import (
	"net/http"
	"strings"
)

var sensitiveKeys = []string{
	"kennitala",
	"password",
	"secret",
	"token",
	"api_key",
	"authorization",
}

// MaskKennitala masks a national identifier for logging, keeping only the
// suffix. Kennitala values are personal data and must never be logged whole.
func MaskKennitala(value string) string {
	return maskLast4(strings.ReplaceAll(strings.TrimSpace(value), "-", ""))
}

// MaskAuthorization masks bearer tokens, preserving the scheme.
func MaskAuthorization(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.Fields(value)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return "Bearer " + maskLast4(parts[1])
	}
	return maskLast4(value)
}

// MaskHeaders returns a copy of headers with sensitive fields masked.
func MaskHeaders(headers http.Header) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	masked := make(map[string]string, len(headers))
	for key, values := range headers {
		value := strings.Join(values, ", ")
		switch {
		case strings.EqualFold(key, "Authorization"):
			masked[key] = MaskAuthorization(value)
		case isSensitiveKey(key):
			masked[key] = maskLast4(value)
		default:
			masked[key] = value
		}
	}
	return masked
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, needle := range sensitiveKeys {
		if strings.Contains(key, needle) {
			return true
		}
	}
	return false
}

func maskLast4(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****" + value
	}
	return "****" + value[len(value)-4:]
}
