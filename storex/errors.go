package storex

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Abraxas-365/faultable/faultx"
)

// Translate maps a datastore failure to the fault a boundary should render
// for it. Faults pass through untouched; nil stays nil. The original error
// is always wrapped into the returned fault, so errors.Is and errors.As
// keep working against driver sentinels.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := faultx.AsFault(err); ok {
		return err
	}

	switch {
	case errors.Is(err, sql.ErrNoRows), errors.Is(err, mongo.ErrNoDocuments):
		return faultx.NotFound.New(faultx.WithCause(err))
	case errors.Is(err, context.Canceled):
		// The caller gave up; the peer is usually gone too.
		return faultx.ClientDisconnected.New(faultx.WithCause(err))
	case errors.Is(err, context.DeadlineExceeded):
		return faultx.GatewayTimeout.New(faultx.WithCause(err))
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return translatePQ(pqErr, err)
	}

	if mongo.IsDuplicateKeyError(err) {
		return faultx.Conflict.New(faultx.WithCause(err))
	}
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return faultx.ServiceUnavailable.New(faultx.WithCause(err))
	}

	return faultx.InternalServerError.New(faultx.WithCause(err))
}

// translatePQ maps postgres SQLSTATE codes: constraint and serialization
// failures surface as client-visible conflicts, connection and resource
// classes as 503.
func translatePQ(pqErr *pq.Error, err error) error {
	switch pqErr.Code {
	case "23505": // unique_violation
		return faultx.Conflict.New(faultx.WithCause(err))
	case "23503": // foreign_key_violation
		return faultx.UnprocessableEntity.New(faultx.WithCause(err))
	case "40001": // serialization_failure
		return faultx.Conflict.New(faultx.WithCause(err))
	}

	switch pqErr.Code.Class() {
	case "08", "53", "57": // connection, insufficient resources, operator intervention
		return faultx.ServiceUnavailable.New(faultx.WithCause(err))
	}

	return faultx.InternalServerError.New(faultx.WithCause(err))
}

// MissingKey wraps the name of an absent request or document value as the
// ready-made 400-with-KeyError fault.
func MissingKey(key string) error {
	return faultx.BadRequestKey.New(key)
}
