package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorKindSurvivesWrapping(t *testing.T) {
	base := Errorf(KindNetwork, "geocode request: %w", io.ErrUnexpectedEOF)
	wrapped := fmt.Errorf("resolve origin: %w", base)

	if !errors.Is(wrapped, ErrNetwork) {
		t.Errorf("errors.Is(wrapped, ErrNetwork) = false")
	}
	if errors.Is(wrapped, ErrUpstream) {
		t.Errorf("network error matched ErrUpstream")
	}
	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Errorf("cause not reachable through Unwrap")
	}
	if KindOf(wrapped) != KindNetwork {
		t.Errorf("KindOf = %q, want %q", KindOf(wrapped), KindNetwork)
	}
	if KindOf(io.EOF) != "" {
		t.Errorf("KindOf(foreign) = %q, want empty", KindOf(io.EOF))
	}
}

func TestErrorMessage(t *testing.T) {
	err := Errorf(KindNotFound, "no match for %q", "atlantis")
	if err.Error() != `no match for "atlantis"` {
		t.Errorf("Error() = %q", err.Error())
	}
	if ErrProtocol.Error() != "protocol_error" {
		t.Errorf("sentinel Error() = %q", ErrProtocol.Error())
	}
}
