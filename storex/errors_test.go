package storex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Abraxas-365/faultable/faultx"
)

func TestTranslateNil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Translate(nil))
}

func TestTranslateFaultPassthrough(t *testing.T) {
	t.Parallel()

	f := faultx.Gone.New()
	assert.Same(t, f, Translate(f))

	wrapped := fmt.Errorf("loading profile: %w", faultx.Forbidden.New())
	assert.Same(t, wrapped, Translate(wrapped))
}

func TestTranslateKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		kind *faultx.Kind
	}{
		{name: "sql no rows", err: sql.ErrNoRows, kind: faultx.NotFound},
		{name: "wrapped sql no rows", err: fmt.Errorf("user: %w", sql.ErrNoRows), kind: faultx.NotFound},
		{name: "mongo no documents", err: mongo.ErrNoDocuments, kind: faultx.NotFound},
		{name: "context canceled", err: context.Canceled, kind: faultx.ClientDisconnected},
		{name: "context deadline", err: context.DeadlineExceeded, kind: faultx.GatewayTimeout},
		{name: "pq unique violation", err: &pq.Error{Code: "23505"}, kind: faultx.Conflict},
		{name: "pq foreign key", err: &pq.Error{Code: "23503"}, kind: faultx.UnprocessableEntity},
		{name: "pq serialization failure", err: &pq.Error{Code: "40001"}, kind: faultx.Conflict},
		{name: "pq connection failure", err: &pq.Error{Code: "08006"}, kind: faultx.ServiceUnavailable},
		{name: "pq out of memory", err: &pq.Error{Code: "53200"}, kind: faultx.ServiceUnavailable},
		{name: "pq shutting down", err: &pq.Error{Code: "57P01"}, kind: faultx.ServiceUnavailable},
		{name: "pq anything else", err: &pq.Error{Code: "42601"}, kind: faultx.InternalServerError},
		{name: "mongo duplicate key", err: mongoDuplicateKey(), kind: faultx.Conflict},
		{name: "plain error", err: errors.New("driver exploded"), kind: faultx.InternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Translate(tt.err)
			require.Error(t, got)
			assert.True(t, errors.Is(got, tt.kind), "want kind %d %s, got %v", tt.kind.Code(), tt.kind.Name(), got)

			// The driver error stays reachable through the fault.
			f, ok := faultx.AsFault(got)
			require.True(t, ok)
			assert.Equal(t, tt.err, f.Cause())
		})
	}
}

func TestTranslateClientDisconnectedIsStillBadRequest(t *testing.T) {
	t.Parallel()

	got := Translate(context.Canceled)
	assert.True(t, errors.Is(got, faultx.BadRequest))
}

func TestMissingKey(t *testing.T) {
	t.Parallel()

	err := MissingKey("user_id")

	assert.True(t, errors.Is(err, faultx.BadRequest))

	var keyErr *faultx.KeyError
	require.True(t, errors.As(err, &keyErr))
	assert.Equal(t, "user_id", keyErr.Key)
}

func mongoDuplicateKey() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
}
