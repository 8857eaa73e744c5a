package logger

import (
	"net/http"
	"testing"
)

func TestMaskKennitala(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"010190-1234", "****1234"},
		{"0101901234", "****1234"},
		{"1234", "****1234"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := MaskKennitala(tc.input); got != tc.want {
			t.Fatalf("MaskKennitala(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestMaskAuthorizationKeepsScheme(t *testing.T) {
	got := MaskAuthorization("Bearer super-secret-token")
	if got != "Bearer ****oken" {
		t.Fatalf("MaskAuthorization = %q", got)
	}
}

func TestMaskHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer abcd1234efgh")
	headers.Set("X-Kennitala", "0101901234")
	headers.Set("Accept", "application/json")

	masked := MaskHeaders(headers)
	if masked["Authorization"] != "Bearer ****efgh" {
		t.Fatalf("Authorization = %q", masked["Authorization"])
	}
	if masked["X-Kennitala"] != "****1234" {
		t.Fatalf("X-Kennitala = %q", masked["X-Kennitala"])
	}
	if masked["Accept"] != "application/json" {
		t.Fatalf("Accept = %q", masked["Accept"])
	}
}
