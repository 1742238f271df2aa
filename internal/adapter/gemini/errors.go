package gemini

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure.
type Kind string

const (
	KindTransport         Kind = "transport"
	KindNoCandidates      Kind = "no_candidates"
	KindNoText            Kind = "no_text"
	KindMalformedResponse Kind = "malformed_response"
)

var (
	// ErrTransport covers network failures and non-2xx responses.
	ErrTransport = errors.New("gemini: transport failure")
	// ErrNoCandidates means the response carried an empty candidate list.
	ErrNoCandidates = errors.New("gemini: no candidates returned")
	// ErrNoText means the first candidate had no text part.
	ErrNoText = errors.New("gemini: no text in response")
	// ErrMalformedResponse means the response body was not the expected JSON.
	ErrMalformedResponse = errors.New("gemini: malformed response")
)

func (k Kind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindNoCandidates:
		return ErrNoCandidates
	case KindNoText:
		return ErrNoText
	case KindMalformedResponse:
		return ErrMalformedResponse
	}
	return nil
}

// Error is returned by Client.Generate for every failure. Match it with
// errors.Is against the Err* sentinels or errors.As to read Kind.
type Error struct {
	Kind Kind
	// StatusCode is set for non-2xx responses.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf returns the kind of a gateway error, or "" for other errors.
func KindOf(err error) Kind {
	var gErr *Error
	if errors.As(err, &gErr) {
		return gErr.Kind
	}
	return ""
}
