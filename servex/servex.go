package servex

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Abraxas-365/faultable/faultx"
)

// HandlerFunc is an http handler that reports failure by returning an error
// instead of writing the response itself. Returning a fault renders that
// fault; returning any other error renders a 500.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Boundary is the propagation edge of the fault system: handlers and
// middlewares built from it render faults that reach them, log server-side
// failures and turn everything else into an internal error page.
type Boundary struct {
	logger  zerolog.Logger
	aborter *faultx.Aborter
}

// Option configures a Boundary.
type Option func(*Boundary)

// WithLogger sets the logger used for 5xx and unhandled failures. The
// default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Boundary) {
		b.logger = logger
	}
}

// WithAborter sets the aborter used to build the internal-error fault, so an
// overlay that replaces code 500 also changes what unhandled errors render
// as.
func WithAborter(aborter *faultx.Aborter) Option {
	return func(b *Boundary) {
		b.aborter = aborter
	}
}

// New creates a Boundary.
func New(opts ...Option) *Boundary {
	b := &Boundary{
		logger:  zerolog.Nop(),
		aborter: faultx.NewAborter(nil, nil),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Handler adapts an error-returning handler to http.Handler. A returned
// error is rendered only if h has not written anything yet; otherwise it is
// logged and the response is left alone.
func (b *Boundary) Handler(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tracked := &trackedWriter{ResponseWriter: w}
		err := h(tracked, r)
		if err == nil {
			return
		}
		if tracked.wrote {
			b.logger.Error().Err(err).Str("path", r.URL.Path).
				Msg("handler failed after writing response")
			return
		}
		b.Render(tracked, r, err)
	})
}

// Recover turns panics in next into rendered responses: a panicked fault
// renders as itself, anything else as an internal error. http.ErrAbortHandler
// keeps its net/http meaning and is re-panicked.
func (b *Boundary) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tracked := &trackedWriter{ResponseWriter: w}
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			err, ok := v.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", v)
			}
			if tracked.wrote {
				b.logger.Error().Err(err).Str("path", r.URL.Path).
					Msg("panic after writing response")
				return
			}
			b.Render(tracked, r, err)
		}()
		next.ServeHTTP(tracked, r)
	})
}

// Render writes err to w. Faults render themselves; anything else renders
// the internal-error kind and is logged with an incident id, as are 5xx
// faults.
func (b *Boundary) Render(w http.ResponseWriter, r *http.Request, err error) {
	f, ok := faultx.AsFault(err)
	if !ok {
		f = b.internal(r, err)
	} else if f.StatusCode() >= 500 {
		b.logger.Error().
			Str("incident", uuid.NewString()).
			Int("status", f.StatusCode()).
			Str("path", r.URL.Path).
			Err(err).
			Msg("request failed")
	}
	f.ServeHTTP(w, r)
}

// internal logs err under a fresh incident id and returns the fault to
// render for it.
func (b *Boundary) internal(r *http.Request, err error) *faultx.Fault {
	incident := uuid.NewString()

	event := b.logger.Error().Str("incident", incident).Str("path", r.URL.Path)
	var unknown *faultx.UnknownCodeError
	if errors.As(err, &unknown) {
		event.Int("code", unknown.Code).Msg("abort code missing from mapping")
	} else {
		event.Err(err).Msg("unhandled error")
	}

	internal := b.aborter.Abort(http.StatusInternalServerError)
	f, ok := faultx.AsFault(internal)
	if !ok {
		// Only reachable when a custom mapping dropped code 500.
		f = faultx.InternalServerError.New()
	}
	return f
}

// trackedWriter records whether anything has been written, so the boundary
// never writes a second response over a partial one.
type trackedWriter struct {
	http.ResponseWriter
	wrote bool
}

func (t *trackedWriter) WriteHeader(status int) {
	t.wrote = true
	t.ResponseWriter.WriteHeader(status)
}

func (t *trackedWriter) Write(p []byte) (int, error) {
	t.wrote = true
	return t.ResponseWriter.Write(p)
}
