/*
Package faultx provides an HTTP-aware error taxonomy: a catalog of error
kinds, one per status code, each able to render itself as a complete HTTP
response, plus an aborter that resolves numeric codes into returnable
faults.

# Kinds and Faults

A Kind is a catalog entry (status code plus default description); a Fault is
one occurrence of it. Kinds double as errors.Is targets:

	err := faultx.NotFound.New()

	if errors.Is(err, faultx.NotFound) {
		// handle 404
	}

Options override instance state at construction:

	faultx.MethodNotAllowed.New(faultx.WithAllowed("GET", "POST"))
	faultx.Unauthorized.New(faultx.WithAuthenticate(`Basic realm="api"`))
	faultx.RequestedRangeNotSatisfiable.New(faultx.WithRange(500))
	faultx.ServiceUnavailable.New(faultx.WithRetryAfter(120))

# Rendering

Every fault renders the same protocol: Headers, HTMLDescription, HTMLBody,
Response. Faults also implement http.Handler, so a boundary can serve one
directly:

	func handler(w http.ResponseWriter, r *http.Request) {
		user, err := lookup(r.PathValue("id"))
		if err != nil {
			faultx.NotFound.New(faultx.WithCause(err)).ServeHTTP(w, r)
			return
		}
		// ...
	}

# Aborting

Abort resolves a status code through the registry of canonical kinds and
returns the fault, so handlers signal with a plain return:

	if !authorized {
		return faultx.Abort(403)
	}

Unknown codes come back as *UnknownCodeError, never as a disguised 500.
Custom codes take a private Aborter with an overlay:

	outOfCoffee := faultx.NewKind(599, "Out of coffee.")
	aborter := faultx.NewAborter(nil, map[int]*faultx.Kind{599: outOfCoffee})
	return aborter.Abort(599)

A prebuilt response can travel as a fault too; rendering hands it back
untouched:

	return faultx.AbortResponse(respx.New("done early", 200, nil))

# Combining kinds

Combine produces a kind with two identities, the Go rendition of an error
that is both an HTTP condition and a lower-level failure. BadRequestKey is
the ready-made combination of BadRequest and KeyError:

	err := faultx.BadRequestKey.New("user_id")

	errors.Is(err, faultx.BadRequest) // true

	var keyErr *faultx.KeyError
	errors.As(err, &keyErr)           // true, keyErr.Key == "user_id"

Setting ShowDetail on the fault appends the wrapped message to the rendered
description.

# Derived variants

Variant derives a kind that keeps its parent's status code but matches on
its own, the way ClientDisconnected, SecurityError and BadHost specialize
BadRequest:

	err := faultx.SecurityError.New()

	errors.Is(err, faultx.SecurityError) // true
	errors.Is(err, faultx.BadRequest)    // true, same 400 family
*/
package faultx
