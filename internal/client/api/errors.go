package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed call.
type Kind int

const (
	// KindTransport means no response was received.
	KindTransport Kind = iota + 1
	// KindUnauthorized is a 401 response; the session has been cleared.
	KindUnauthorized
	// KindStatus is any other non-2xx response.
	KindStatus
	// KindDecode is a 2xx response whose body did not match the expected record.
	KindDecode
)

var (
	ErrTransport    = errors.New("transport error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStatus       = errors.New("unexpected status")
	ErrDecode       = errors.New("invalid response body")
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUnauthorized:
		return "unauthorized"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindUnauthorized:
		return ErrUnauthorized
	case KindStatus:
		return ErrStatus
	case KindDecode:
		return ErrDecode
	default:
		return nil
	}
}

// Error describes a failed API call.
type Error struct {
	Op      string
	Kind    Kind
	Status  int
	Message string // extracted from Payload when the server sent one
	Payload []byte // raw response body, nil for transport errors
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "api error"
	}

	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	switch {
	case e.Message != "":
		b.WriteString(e.Message)
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString(e.Kind.String())
	}
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's Kind, so callers can write
// errors.Is(err, api.ErrUnauthorized).
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// serverMessage extracts a human readable message from an error payload.
// The mock backend uses "error", DRF uses "detail".
func serverMessage(payload []byte) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	for _, key := range []string{"error", "message", "detail"} {
		raw, ok := body[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
