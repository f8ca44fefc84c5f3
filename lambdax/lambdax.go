package lambdax

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Abraxas-365/faultable/faultx"
)

// Handler is the proxy-integration handler shape Wrap decorates.
type Handler[I any] func(context.Context, I) (events.APIGatewayProxyResponse, error)

// Response renders err as an API Gateway proxy response. Faults keep their
// status, headers and HTML body; anything else renders as a 500 with the
// error attached as the cause. Headers carries the last value per name,
// MultiValueHeaders keeps duplicates in order.
func Response(err error) events.APIGatewayProxyResponse {
	f, ok := faultx.AsFault(err)
	if !ok {
		f = faultx.InternalServerError.New(faultx.WithCause(err))
	}

	resp := f.Response()
	status := resp.Status
	if status < 100 || status > 999 {
		status = http.StatusInternalServerError
	}

	headers := make(map[string]string, len(resp.Headers))
	multi := make(map[string][]string, len(resp.Headers))
	for _, h := range resp.Headers {
		headers[h.Name] = h.Value
		multi[h.Name] = append(multi[h.Name], h.Value)
	}

	return events.APIGatewayProxyResponse{
		StatusCode:        status,
		Headers:           headers,
		MultiValueHeaders: multi,
		Body:              resp.Body,
	}
}

// Wrap decorates a handler so returned faults render as proxy responses
// instead of failing the invocation. Non-fault errors still propagate and
// surface as invocation errors.
func Wrap[I any](h Handler[I]) Handler[I] {
	return func(ctx context.Context, in I) (events.APIGatewayProxyResponse, error) {
		resp, err := h(ctx, in)
		if err == nil {
			return resp, nil
		}
		if _, ok := faultx.AsFault(err); ok {
			return Response(err), nil
		}
		return resp, err
	}
}
