package docx

import (
	"github.com/Abraxas-365/faultable/faultx"
)

// Entry documents one registered fault kind.
type Entry struct {
	Code        int      `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Headers     []string `json:"headers,omitempty"`
}

// extraHeaders lists the conditional headers a kind can attach beyond
// Content-Type.
var extraHeaders = map[int][]string{
	401: {"WWW-Authenticate"},
	405: {"Allow"},
	416: {"Content-Range"},
	429: {"Retry-After"},
	503: {"Retry-After"},
}

// Catalog returns one entry per registered kind, ordered by status code.
func Catalog() []Entry {
	codes := faultx.Codes()
	entries := make([]Entry, 0, len(codes))

	for _, code := range codes {
		kind, ok := faultx.Registered(code)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Code:        code,
			Name:        kind.Name(),
			Description: kind.Description(),
			Headers:     extraHeaders[code],
		})
	}

	return entries
}
