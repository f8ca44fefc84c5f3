package faultx

import (
	"github.com/Abraxas-365/faultable/statusx"
)

// Kind is one entry of the error catalog: an HTTP status code plus the
// default description rendered when an occurrence carries no override.
// Kinds are immutable after construction and safe for concurrent use.
//
// A Kind is itself an error value so it can serve as an errors.Is target:
//
//	if errors.Is(err, faultx.NotFound) { ... }
type Kind struct {
	code        int
	description string
	parent      *Kind
}

// NewKind creates a kind with the given status code and default description.
// The catalog below is declared with it; callers use it for custom codes
// handed to an Aborter overlay. The result descends from Base.
func NewKind(code int, description string) *Kind {
	return &Kind{code: code, description: description, parent: Base}
}

// Variant derives a kind that shares the receiver's status code and renders
// identically, but can be matched on its own with errors.Is. An empty
// description inherits the receiver's.
func (k *Kind) Variant(description string) *Kind {
	if description == "" {
		description = k.description
	}
	return &Kind{code: k.code, description: description, parent: k}
}

// Code returns the HTTP status code, 0 for the abstract Base kind.
func (k *Kind) Code() int { return k.code }

// Description returns the default description.
func (k *Kind) Description() string { return k.description }

// Name returns the reason phrase for the kind's status code.
func (k *Kind) Name() string { return statusx.Text(k.code) }

// Error renders the kind in the same "<code> <name>: <description>" shape as
// a Fault, so bare kinds read well inside wrapped error chains.
func (k *Kind) Error() string {
	return codeString(k.code) + " " + k.Name() + ": " + k.description
}

// Unwrap returns the ancestor kind, nil at Base. errors.Is walks this chain,
// which is how a fault of a derived variant still matches its root kind.
func (k *Kind) Unwrap() error {
	if k.parent == nil {
		return nil
	}
	return k.parent
}

// New creates an occurrence of this kind.
func (k *Kind) New(opts ...Option) *Fault {
	f := &Fault{
		kind:        k,
		rangeLength: -1,
		rangeUnits:  "bytes",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// The built-in catalog. Every kind except Base carries a status code and a
// stock description; the handful with header behavior beyond that take their
// state from the matching Option.
var (
	// Base is the abstract root of the catalog. It has no status code of
	// its own; it exists so every fault shares a common ancestor and so a
	// prebuilt response can be wrapped as a fault without inventing a code
	// for it.
	Base = &Kind{}

	BadRequest = NewKind(400, "The browser (or proxy) sent a request that this server"+
		" could not understand.")

	// ClientDisconnected is reported when the peer goes away before the
	// request finishes. Rendering it rarely reaches anyone, but it keeps
	// its own identity so boundaries can silence it.
	ClientDisconnected = BadRequest.Variant("")

	// SecurityError is reported when a request trips a security check.
	// Otherwise exactly a 400.
	SecurityError = BadRequest.Variant("")

	// BadHost is reported for a malformed or untrusted Host header.
	BadHost = BadRequest.Variant("")

	// Unauthorized faults render a WWW-Authenticate header when challenges
	// are attached with WithAuthenticate.
	Unauthorized = NewKind(401, "The server could not verify that you are authorized"+
		" to access the URL requested. You either supplied the wrong credentials (e.g."+
		" a bad password), or your browser doesn't understand how to supply the"+
		" credentials required.")

	Forbidden = NewKind(403, "You don't have the permission to access the requested"+
		" resource. It is either read-protected or not readable by the server.")

	NotFound = NewKind(404, "The requested URL was not found on the server. If you"+
		" entered the URL manually please check your spelling and try again.")

	// MethodNotAllowed faults render an Allow header when the permitted
	// methods are attached with WithAllowed.
	MethodNotAllowed = NewKind(405, "The method is not allowed for the requested URL.")

	NotAcceptable = NewKind(406, "The resource identified by the request is only"+
		" capable of generating response entities which have content characteristics"+
		" not acceptable according to the accept headers sent in the request.")

	RequestTimeout = NewKind(408, "The server closed the network connection because"+
		" the browser didn't finish the request within the specified time.")

	Conflict = NewKind(409, "A conflict happened while processing the request. The"+
		" resource might have been modified while the request was being processed.")

	Gone = NewKind(410, "The requested URL is no longer available on this server and"+
		" there is no forwarding address. If you followed a link from a foreign page,"+
		" please contact the author of this page.")

	LengthRequired = NewKind(411, "A request with this method requires a valid"+
		" Content-Length header.")

	PreconditionFailed = NewKind(412, "The precondition on the request for the URL"+
		" failed positive evaluation.")

	RequestEntityTooLarge = NewKind(413, "The data value transmitted exceeds the"+
		" capacity limit.")

	RequestURITooLarge = NewKind(414, "The length of the requested URL exceeds the"+
		" capacity limit for this server. The request cannot be processed.")

	UnsupportedMediaType = NewKind(415, "The server does not support the media type"+
		" transmitted in the request.")

	// RequestedRangeNotSatisfiable faults render a Content-Range header
	// when the total length is attached with WithRange.
	RequestedRangeNotSatisfiable = NewKind(416, "The server cannot provide the"+
		" requested range.")

	ExpectationFailed = NewKind(417, "The server could not meet the requirements of"+
		" the Expect header")

	ImATeapot = NewKind(418, "This server is a teapot, not a coffee machine")

	UnprocessableEntity = NewKind(422, "The request was well-formed but was unable"+
		" to be followed due to semantic errors.")

	Locked = NewKind(423, "The resource that is being accessed is locked.")

	FailedDependency = NewKind(424, "The method could not be performed on the"+
		" resource because the requested action depended on another action and that"+
		" action failed.")

	PreconditionRequired = NewKind(428, "This request is required to be conditional;"+
		` try using "If-Match" or "If-Unmodified-Since".`)

	// TooManyRequests faults render a Retry-After header when a delay is
	// attached with WithRetryAfter.
	TooManyRequests = NewKind(429, "This user has exceeded an allotted request count."+
		" Try again later.")

	RequestHeaderFieldsTooLarge = NewKind(431, "One or more header fields exceeds"+
		" the maximum size.")

	UnavailableForLegalReasons = NewKind(451, "Unavailable for legal reasons.")

	InternalServerError = NewKind(500, "The server encountered an internal error and"+
		" was unable to complete your request. Either the server is overloaded or"+
		" there is an error in the application.")

	NotImplemented = NewKind(501, "The server does not support the action requested"+
		" by the browser.")

	BadGateway = NewKind(502, "The proxy server received an invalid response from an"+
		" upstream server.")

	// ServiceUnavailable faults render a Retry-After header when a delay
	// is attached with WithRetryAfter.
	ServiceUnavailable = NewKind(503, "The server is temporarily unable to service"+
		" your request due to maintenance downtime or capacity problems. Please try"+
		" again later.")

	GatewayTimeout = NewKind(504, "The connection to an upstream server timed out.")

	HTTPVersionNotSupported = NewKind(505, "The server does not support the HTTP"+
		" protocol version used in the request.")
)
