package currency

import (
	"errors"
	"testing"
)

func TestFromCode(t *testing.T) {
	tests := []struct {
		code    string
		want    Currency
		wantErr bool
	}{
		{"USD", "USD", false},
		{"usd", "USD", false},
		{" eur ", "EUR", false},
		{"XXX", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := FromCode(tt.code)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCode) {
				t.Errorf("FromCode(%q) error = %v, want ErrUnknownCode", tt.code, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("FromCode(%q) unexpected error: %v", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromCode(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFromNumeric(t *testing.T) {
	got, err := FromNumeric(840)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "USD" {
		t.Errorf("FromNumeric(840) = %q, want USD", got)
	}

	if _, err := FromNumeric(1); !errors.Is(err, ErrUnknownNumeric) {
		t.Errorf("expected ErrUnknownNumeric, got %v", err)
	}
}

func TestNumericRoundTrip(t *testing.T) {
	for code, numeric := range numericCodes {
		if code.Numeric() != numeric {
			t.Errorf("%s.Numeric() = %d, want %d", code, code.Numeric(), numeric)
		}
		back, err := FromNumeric(numeric)
		if err != nil || back != code {
			t.Errorf("FromNumeric(%d) = %q, %v, want %q", numeric, back, err, code)
		}
	}
}

func TestContains(t *testing.T) {
	set := []Currency{"USD", "EUR"}

	if !Contains(set, "EUR") {
		t.Error("expected EUR in set")
	}
	if Contains(set, "JPY") {
		t.Error("did not expect JPY in set")
	}
	if Contains(nil, "USD") {
		t.Error("empty set contains nothing")
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]Currency{"USD", "EUR"}); got != "USD,EUR" {
		t.Errorf("Join = %q, want USD,EUR", got)
	}
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
}
