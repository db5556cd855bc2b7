package httpcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrymomot/pulse"
)

// Probe returns a probe that issues a GET request to url and verifies the
// response status code matches wantStatus. The client is supplied by the
// caller so its timeouts, TLS settings, and connection pool stay under the
// caller's control.
//
// Example:
//
//	client := &http.Client{Timeout: 2 * time.Second}
//	b.MustAdd("payments-api", pulse.KindReadiness,
//		httpcheck.Probe(client, "https://payments.internal/health", http.StatusOK))
func Probe(client *http.Client, url string, wantStatus int) pulse.CheckFunc {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrNilClient
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return errors.Join(ErrProbeFailed, err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return errors.Join(ErrProbeFailed, err)
		}
		defer func() { _ = resp.Body.Close() }()

		// Drain so the connection can be reused by the pool.
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode != wantStatus {
			return fmt.Errorf("%w: expected status %d, got %d",
				ErrUnexpectedStatus, wantStatus, resp.StatusCode)
		}
		return nil
	}
}
