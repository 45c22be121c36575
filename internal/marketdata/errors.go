package marketdata

import (
	"errors"
	"fmt"
)

// ErrNoData marks a request that succeeded but yielded no usable price
// points (unknown ticker, rate-limit note payload, or every close field
// unparsable). Callers must treat it as an empty result, not a failure.
var ErrNoData = errors.New("no data found for this symbol")

// Kind classifies a fetch failure.
type Kind int

const (
	// KindTransport covers connectivity problems: dial/timeout errors,
	// non-2xx statuses, unreadable bodies.
	KindTransport Kind = iota
	// KindSchema covers responses that do not match the expected shape.
	KindSchema
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// FetchError is a classified fetch failure.
type FetchError struct {
	Kind Kind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func transportErr(err error) error {
	return &FetchError{Kind: KindTransport, Err: err}
}

func schemaErr(err error) error {
	return &FetchError{Kind: KindSchema, Err: err}
}
