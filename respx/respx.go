package respx

import (
	"fmt"
	"io"
	"net/http"

	"github.com/Abraxas-365/faultable/statusx"
)

// Header is a single response header. Responses keep headers as an ordered
// list so repeated names and declaration order survive until the transport
// writes them out.
type Header struct {
	Name  string
	Value string
}

// Response is a minimal response value: a body, a status code and an ordered
// header list. It implements http.Handler so it can be served directly.
type Response struct {
	Body    string
	Status  int
	Headers []Header
}

// New creates a Response from a body, a status code and a header list.
func New(body string, status int, headers []Header) *Response {
	return &Response{
		Body:    body,
		Status:  status,
		Headers: headers,
	}
}

// StatusLine returns the "<code> <reason>" line for the response status.
func (r *Response) StatusLine() string {
	return fmt.Sprintf("%d %s", r.Status, statusx.Text(r.Status))
}

// ServeHTTP writes the response to w. Headers are added in order, so
// repeated names become repeated header lines. A status outside the valid
// HTTP range is served as 500 because WriteHeader panics on it.
func (r *Response) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	for _, h := range r.Headers {
		w.Header().Add(h.Name, h.Value)
	}

	status := r.Status
	if status < 100 || status > 999 {
		status = http.StatusInternalServerError
	}
	w.WriteHeader(status)

	io.WriteString(w, r.Body)
}
