package faultx

import (
	"fmt"

	"github.com/Abraxas-365/faultable/respx"
)

// UnknownCodeError reports an Abort call whose status code has no kind in
// the aborter's mapping. It is deliberately not a Fault: an unmapped code is
// a programming error at the call site, not a condition to render to the
// client, so it must never be silently served as a 500.
type UnknownCodeError struct {
	Code int
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("no kind for code %d", e.Code)
}

// Aborter resolves status codes to faults through a private copy of the
// kind mapping, optionally overlaid with custom entries at construction.
type Aborter struct {
	mapping map[int]*Kind
}

// NewAborter creates an Aborter. A nil mapping seeds from the default
// registry. Both maps are copied, so later changes to them never reach the
// aborter; extra entries replace same-code mapping entries.
func NewAborter(mapping, extra map[int]*Kind) *Aborter {
	if mapping == nil {
		mapping = defaultKinds
	}
	m := make(map[int]*Kind, len(mapping)+len(extra))
	for code, kind := range mapping {
		m[code] = kind
	}
	for code, kind := range extra {
		m[code] = kind
	}
	return &Aborter{mapping: m}
}

// Abort returns a fault of the kind mapped to code, configured with opts.
// For codes missing from the mapping it returns an *UnknownCodeError
// instead. The result is always non-nil, so handlers can signal directly:
//
//	return aborter.Abort(404)
func (a *Aborter) Abort(code int, opts ...Option) error {
	kind, ok := a.mapping[code]
	if !ok {
		return &UnknownCodeError{Code: code}
	}
	return kind.New(opts...)
}

// AbortResponse wraps a prebuilt response as a fault of the Base kind.
// Rendering the fault returns resp itself, untouched.
func (a *Aborter) AbortResponse(resp *respx.Response) error {
	return Base.New(WithResponse(resp))
}

// defaultAborter backs the package-level Abort functions. It carries no
// overlay; custom codes need a private Aborter.
var defaultAborter = NewAborter(nil, nil)

// Abort resolves code through the default registry mapping:
//
//	return faultx.Abort(404)
func Abort(code int, opts ...Option) error {
	return defaultAborter.Abort(code, opts...)
}

// AbortResponse wraps resp as a returnable fault through the default
// aborter.
func AbortResponse(resp *respx.Response) error {
	return defaultAborter.AbortResponse(resp)
}
