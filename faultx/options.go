package faultx

import "github.com/Abraxas-365/faultable/respx"

// Option configures a Fault at construction time.
type Option func(*Fault)

// WithDescription overrides the kind's default description for this fault.
func WithDescription(description string) Option {
	return func(f *Fault) {
		f.description = description
	}
}

// WithResponse attaches a prebuilt response. Response returns it unchanged
// instead of assembling one from the fault's own state.
func WithResponse(resp *respx.Response) Option {
	return func(f *Fault) {
		f.response = resp
	}
}

// WithAllowed sets the methods rendered in the Allow header. Meaningful on
// MethodNotAllowed.
func WithAllowed(methods ...string) Option {
	return func(f *Fault) {
		f.allowed = methods
	}
}

// WithAuthenticate sets the challenges rendered in the WWW-Authenticate
// header, joined with ", ". Meaningful on Unauthorized.
func WithAuthenticate(challenges ...string) Option {
	return func(f *Fault) {
		f.challenges = challenges
	}
}

// WithRange sets the total length rendered in the Content-Range header.
// Meaningful on RequestedRangeNotSatisfiable.
func WithRange(length int64) Option {
	return func(f *Fault) {
		f.rangeLength = length
	}
}

// WithRangeUnits overrides the Content-Range units, "bytes" by default.
func WithRangeUnits(units string) Option {
	return func(f *Fault) {
		f.rangeUnits = units
	}
}

// WithRetryAfter sets the Retry-After header, in seconds. Meaningful on
// TooManyRequests and ServiceUnavailable.
func WithRetryAfter(seconds int) Option {
	return func(f *Fault) {
		f.retryAfter = seconds
	}
}

// WithHeader appends an extra header after the kind-specific ones. Repeat
// it to send the same name more than once.
func WithHeader(name, value string) Option {
	return func(f *Fault) {
		f.extra = append(f.extra, respx.Header{Name: name, Value: value})
	}
}

// WithCause records err as the underlying cause. errors.Is and errors.As
// reach it through the fault, and ShowDetail renders its message.
func WithCause(err error) Option {
	return func(f *Fault) {
		f.cause = err
	}
}
