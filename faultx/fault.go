package faultx

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"

	"github.com/Abraxas-365/faultable/respx"
)

// Fault is one occurrence of a Kind. Faults are created per failure, carried
// to a boundary as ordinary error values and rendered there; they are not
// reused across requests. All rendering methods compute their output fresh
// from the instance state on every call.
type Fault struct {
	kind         *Kind
	description  string
	response     *respx.Response
	allowed      []string
	challenges   []string
	rangeLength  int64
	rangeUnits   string
	retryAfter   int
	extra        []respx.Header
	cause        error
	label        string
	combinedName string

	// ShowDetail appends the wrapped cause's own message to the rendered
	// description. Useful while debugging, keep it off in production.
	ShowDetail bool
}

// Kind returns the catalog entry this fault occurred for.
func (f *Fault) Kind() *Kind { return f.kind }

// StatusCode returns the HTTP status code of the fault's kind.
func (f *Fault) StatusCode() int { return f.kind.code }

// Name returns the reason phrase of the fault's kind.
func (f *Fault) Name() string { return f.kind.Name() }

// Cause returns the wrapped error, nil when the fault carries none.
func (f *Fault) Cause() error { return f.cause }

// Description returns the instance description, falling back to the kind's
// default. With ShowDetail set and a cause present, the cause's message is
// appended on its own line, prefixed by the wrapped kind's label when the
// fault was built by a Combined kind.
func (f *Fault) Description() string {
	d := f.description
	if d == "" {
		d = f.kind.description
	}
	if f.ShowDetail && f.cause != nil {
		if f.label != "" {
			return fmt.Sprintf("%s\n%s: %s", d, f.label, f.cause.Error())
		}
		return fmt.Sprintf("%s\n%s", d, f.cause.Error())
	}
	return d
}

// Error implements the error interface as "<code> <name>: <description>".
// The abstract Base kind renders its code as "???".
func (f *Fault) Error() string {
	return fmt.Sprintf("%s %s: %s", codeString(f.kind.code), f.Name(), f.Description())
}

// GoString renders like "<faultx.Fault '404: Not Found'>". Faults built by
// a Combined kind substitute the combined name for the type label.
func (f *Fault) GoString() string {
	name := f.combinedName
	if name == "" {
		name = "faultx.Fault"
	}
	return fmt.Sprintf("<%s '%s: %s'>", name, codeString(f.kind.code), f.Name())
}

// Unwrap exposes both identities of the fault: its kind, whose parent chain
// carries the rest of the ancestry, and the wrapped cause when present.
// errors.Is and errors.As see them all.
func (f *Fault) Unwrap() []error {
	errs := make([]error, 0, 2)
	errs = append(errs, f.kind)
	if f.cause != nil {
		errs = append(errs, f.cause)
	}
	return errs
}

// Headers assembles the response headers: the fixed Content-Type first, the
// kind-specific entries only when their field is set, then any extras added
// with WithHeader. The slice is rebuilt on every call, so callers may keep
// or modify it freely.
func (f *Fault) Headers() []respx.Header {
	headers := []respx.Header{{Name: "Content-Type", Value: "text/html"}}
	if len(f.allowed) > 0 {
		headers = append(headers, respx.Header{Name: "Allow", Value: strings.Join(f.allowed, ", ")})
	}
	if len(f.challenges) > 0 {
		headers = append(headers, respx.Header{Name: "WWW-Authenticate", Value: strings.Join(f.challenges, ", ")})
	}
	if f.rangeLength >= 0 {
		headers = append(headers, respx.Header{Name: "Content-Range", Value: fmt.Sprintf("%s */%d", f.rangeUnits, f.rangeLength)})
	}
	if f.retryAfter > 0 {
		headers = append(headers, respx.Header{Name: "Retry-After", Value: strconv.Itoa(f.retryAfter)})
	}
	return append(headers, f.extra...)
}

// HTMLDescription returns the description HTML-escaped and wrapped in a
// single <p> element, with newlines rendered as <br>. An empty description
// yields "<p></p>".
func (f *Fault) HTMLDescription() string {
	return "<p>" + strings.ReplaceAll(html.EscapeString(f.Description()), "\n", "<br>") + "</p>"
}

// HTMLBody returns the fixed error page: doctype, title, heading and
// description, in that order. The status name is escaped; the description is
// escaped by HTMLDescription.
func (f *Fault) HTMLBody() string {
	code := codeString(f.kind.code)
	name := html.EscapeString(f.Name())
	return fmt.Sprintf(
		`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 3.2 Final//EN">`+"\n"+
			"<title>%s %s</title>\n<h1>%s</h1>\n%s\n",
		code, name, name, f.HTMLDescription(),
	)
}

// Response returns the renderable response for the fault. A prebuilt
// response attached with WithResponse is returned unchanged, by identity;
// otherwise a new one is assembled from the body, status code and headers.
func (f *Fault) Response() *respx.Response {
	if f.response != nil {
		return f.response
	}
	return respx.New(f.HTMLBody(), f.kind.code, f.Headers())
}

// ServeHTTP makes a fault directly usable as an http.Handler, writing the
// same output Response produces.
func (f *Fault) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.Response().ServeHTTP(w, r)
}

// AsFault unwraps err to a *Fault when one is anywhere in its chain.
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func codeString(code int) string {
	if code == 0 {
		return "???"
	}
	return strconv.Itoa(code)
}
