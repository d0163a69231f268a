// Package observability reports unexpected errors to Sentry.
package observability

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry enables error reporting. With an empty dsn it does nothing.
// The returned function flushes pending events and should be deferred.
func InitSentry(dsn, env, release string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	}); err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// CaptureErr sends err to Sentry if reporting is enabled.
func CaptureErr(err error) {
	if err != nil {
		sentry.CaptureException(err)
	}
}
