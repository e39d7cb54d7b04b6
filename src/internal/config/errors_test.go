package config

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorRendering(t *testing.T) {
	plain := errAt("main", "historydepth", "Invalid historydepth")
	if got := plain.Error(); got != "Invalid historydepth" {
		t.Errorf("Expected message alone, got %q", got)
	}

	cause := fmt.Errorf("strconv.ParseUint: parsing \"x\": invalid syntax")
	wrapped := wrapAt("main", "historydepth", "Invalid historydepth", cause)
	want := "Invalid historydepth - strconv.ParseUint: parsing \"x\": invalid syntax"
	if got := wrapped.Error(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := wrapAt("s0", "bgppeer", "invalid bgppeer was specified", cause)

	if !errors.Is(wrapped, cause) {
		t.Error("Expected errors.Is to reach the cause")
	}
	if errAt("s0", "bgppeer", "msg").Unwrap() != nil {
		t.Error("Expected nil Unwrap for an error without a cause")
	}
}

func TestErrorLocation(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"Section and key", errAt("main", "session", "msg"), "main.session"},
		{"Section only", errAt("main", "", "msg"), "main"},
		{"No locator", newError("msg"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Location(); got != tt.want {
				t.Errorf("Expected location %q, got %q", tt.want, got)
			}
		})
	}
}

func TestErrorAs(t *testing.T) {
	var err error = wrapAt("main", "purge_every", "Invalid purge_every", errors.New("bad"))

	var cfgErr *Error
	if !errors.As(err, &cfgErr) {
		t.Fatal("Expected errors.As to match *Error")
	}
	if cfgErr.Section != "main" || cfgErr.Key != "purge_every" {
		t.Errorf("Expected locator main.purge_every, got %s", cfgErr.Location())
	}
}
