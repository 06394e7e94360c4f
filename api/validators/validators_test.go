package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
)

type promoBody struct {
	Code string `json:"code" validate:"required,max=32"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"code":"MODEST10"}`))
	var body promoBody
	if err := DecodeJSONBody(req, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "MODEST10" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestDecodeJSONBodyRejectsUnknownAndMissingFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"code":"X","extra":1}`))
	var body promoBody
	err := DecodeJSONBody(req, &body)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	err = DecodeJSONBody(req, &body)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["code"] != "is required" {
		t.Fatalf("expected json field name in details, got %#v", typed.Details())
	}
}

func TestQueryHelpers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?gateway=%20jazzcash%20", nil)
	if got := QueryString(req, "gateway", 32); got != "jazzcash" {
		t.Fatalf("unexpected gateway %q", got)
	}
	if got := QueryString(req, "missing", 10); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  abcdef  ", 3); got != "abc" {
		t.Fatalf("unexpected %q", got)
	}
	city := strings.Repeat("ع", 60)
	got := SanitizeString(city, 51)
	if !utf8.ValidString(got) {
		t.Fatalf("cut split a character: %q", got)
	}
	if utf8.RuneCountInString(got) != 51 {
		t.Fatalf("expected 51 characters, got %d", utf8.RuneCountInString(got))
	}
	if got := SanitizeString("  کراچی  ", 100); got != "کراچی" {
		t.Fatalf("unexpected %q", got)
	}
}
