package awsx

import (
	"context"
	"errors"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"

	"github.com/Abraxas-365/faultable/faultx"
)

// Translate converts an AWS SDK error into a fault. Missing S3 objects,
// buckets and SQS queues become 404s, throttling and over-limit answers
// become 503 or 429, denied access 403, and any other upstream HTTP failure
// a 502 keyed off the response status. The SDK error stays reachable as the
// fault's cause. Faults and nil pass through.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := faultx.AsFault(err); ok {
		return err
	}

	if errors.Is(err, context.Canceled) {
		return faultx.ClientDisconnected.New(faultx.WithCause(err))
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return faultx.GatewayTimeout.New(faultx.WithCause(err))
	}

	var noKey *s3types.NoSuchKey
	var noBucket *s3types.NoSuchBucket
	var notFound *s3types.NotFound
	var noQueue *sqstypes.QueueDoesNotExist
	if errors.As(err, &noKey) || errors.As(err, &noBucket) ||
		errors.As(err, &notFound) || errors.As(err, &noQueue) {
		return faultx.NotFound.New(faultx.WithCause(err))
	}

	var overLimit *sqstypes.OverLimit
	if errors.As(err, &overLimit) {
		return faultx.TooManyRequests.New(faultx.WithCause(err))
	}

	var ae smithy.APIError
	if errors.As(err, &ae) {
		switch ae.ErrorCode() {
		case "SlowDown", "Throttling", "ThrottlingException", "RequestLimitExceeded":
			return faultx.ServiceUnavailable.New(faultx.WithCause(err))
		case "AccessDenied":
			return faultx.Forbidden.New(faultx.WithCause(err))
		}
	}

	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		return upstream(re.HTTPStatusCode()).New(faultx.WithCause(err))
	}

	return faultx.InternalServerError.New(faultx.WithCause(err))
}

// upstream picks the kind for a raw upstream status. Anything we cannot
// name more precisely reads as a bad gateway to our own callers.
func upstream(status int) *faultx.Kind {
	switch status {
	case http.StatusNotFound:
		return faultx.NotFound
	case http.StatusForbidden:
		return faultx.Forbidden
	case http.StatusTooManyRequests:
		return faultx.TooManyRequests
	default:
		return faultx.BadGateway
	}
}
