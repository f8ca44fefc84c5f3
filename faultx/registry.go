package faultx

import "sort"

// catalog lists every built-in kind in declaration order. The registry is
// derived from it once at package init; nothing mutates either afterwards.
var catalog = []*Kind{
	Base,
	BadRequest,
	ClientDisconnected,
	SecurityError,
	BadHost,
	Unauthorized,
	Forbidden,
	NotFound,
	MethodNotAllowed,
	NotAcceptable,
	RequestTimeout,
	Conflict,
	Gone,
	LengthRequired,
	PreconditionFailed,
	RequestEntityTooLarge,
	RequestURITooLarge,
	UnsupportedMediaType,
	RequestedRangeNotSatisfiable,
	ExpectationFailed,
	ImATeapot,
	UnprocessableEntity,
	Locked,
	FailedDependency,
	PreconditionRequired,
	TooManyRequests,
	RequestHeaderFieldsTooLarge,
	UnavailableForLegalReasons,
	InternalServerError,
	NotImplemented,
	BadGateway,
	ServiceUnavailable,
	GatewayTimeout,
	HTTPVersionNotSupported,
}

// defaultKinds maps each status code to its canonical kind.
var defaultKinds = buildRegistry(catalog)

func buildRegistry(kinds []*Kind) map[int]*Kind {
	m := make(map[int]*Kind, len(kinds))
	for _, k := range kinds {
		if k.code == 0 {
			continue
		}
		// First declaration wins: derived variants and any later kind
		// sharing a code never displace the canonical entry.
		if _, ok := m[k.code]; ok {
			continue
		}
		m[k.code] = k
	}
	return m
}

// Registered returns the canonical kind for a status code.
func Registered(code int) (*Kind, bool) {
	k, ok := defaultKinds[code]
	return k, ok
}

// DefaultKinds returns a copy of the code to canonical kind mapping, in the
// shape NewAborter accepts.
func DefaultKinds() map[int]*Kind {
	m := make(map[int]*Kind, len(defaultKinds))
	for code, k := range defaultKinds {
		m[code] = k
	}
	return m
}

// Codes returns every registered status code in ascending order.
func Codes() []int {
	codes := make([]int, 0, len(defaultKinds))
	for code := range defaultKinds {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}
