package middleware

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/prorata/internal/metrics"
	"github.com/mmynk/prorata/internal/observability"
)

// MetricsInterceptor counts every RPC by procedure and result code, and
// reports internal and unknown errors to Sentry.
func MetricsInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				c := connect.CodeOf(err)
				code = c.String()
				if c == connect.CodeInternal || c == connect.CodeUnknown {
					observability.CaptureErr(err)
				}
			}
			metrics.ObserveRPC(req.Spec().Procedure, code)

			return resp, err
		}
	}
}
