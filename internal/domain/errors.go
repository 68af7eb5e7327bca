package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can branch on it.
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNetwork      Kind = "network_error"
	KindUpstream     Kind = "upstream_error"
	KindNotFound     Kind = "not_found"
	KindProtocol     Kind = "protocol_error"
)

// Error is the failure value returned by resolvers, route services and stores.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrNetwork      = &Error{Kind: KindNetwork}
	ErrUpstream     = &Error{Kind: KindUpstream}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrProtocol     = &Error{Kind: KindProtocol}
)

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Errorf formats a message like fmt.Errorf and tags it with kind.
// A %w verb keeps the cause reachable through Unwrap.
func Errorf(kind Kind, format string, args ...any) error {
	wrapped := fmt.Errorf(format, args...)
	return &Error{Kind: kind, Message: wrapped.Error(), Err: errors.Unwrap(wrapped)}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
