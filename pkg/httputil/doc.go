// Package httputil provides HTTP helpers shared by the API clients.
//
// # Retry
//
// [Retry] re-runs an operation for transient failures only. Callers mark
// an error as transient by wrapping it with [Retryable]:
//
//   - Network errors
//   - 5xx server errors
//
// Every other error (404, decode failures, rate limiting) is returned from
// the first attempt. The delay doubles after each attempt:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
//
// [RetryWithBackoff] applies the defaults: 3 attempts, 1 second base delay.
package httputil
