package faultx

import (
	"fmt"
	"strings"
)

// Combined pairs an HTTP kind with a second error identity, so one fault
// can be caught either way: as the HTTP kind with errors.Is, or as the
// wrapped error with errors.As.
type Combined[V any] struct {
	kind  *Kind
	label string
	wrap  func(V) error
	name  string
}

// Combine builds a kind that is simultaneously kind and the error produced
// by wrap. New hands its first argument to wrap and the options to the HTTP
// side. label names the wrapped identity when ShowDetail renders it; the
// combined kind's own name defaults to the HTTP kind's name without spaces
// followed by label.
func Combine[V any](kind *Kind, label string, wrap func(V) error) *Combined[V] {
	return &Combined[V]{
		kind:  kind,
		label: label,
		wrap:  wrap,
		name:  strings.ReplaceAll(kind.Name(), " ", "") + label,
	}
}

// Named overrides the derived combined name and returns the same Combined.
func (c *Combined[V]) Named(name string) *Combined[V] {
	c.name = name
	return c
}

// Kind returns the HTTP half of the combination.
func (c *Combined[V]) Kind() *Kind { return c.kind }

// Name returns the combined kind's name.
func (c *Combined[V]) Name() string { return c.name }

// New creates a fault carrying both identities.
func (c *Combined[V]) New(value V, opts ...Option) *Fault {
	f := c.kind.New(opts...)
	f.cause = c.wrap(value)
	f.label = c.label
	f.combinedName = c.name
	return f
}

// KeyError reports a missing lookup key, the failure behind a required
// request value that is absent.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%q", e.Key)
}

// BadRequestKey is BadRequest combined with KeyError, ready for missing
// form fields, query parameters and the like:
//
//	return faultx.BadRequestKey.New("user_id")
//
// Catch sites can match the 400 with errors.Is(err, faultx.BadRequest) or
// pull the key out with errors.As and *faultx.KeyError.
var BadRequestKey = Combine(BadRequest, "KeyError", func(key string) error {
	return &KeyError{Key: key}
})
