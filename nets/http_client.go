package nets

import (
	"net/http"
	"time"
)

type HTTPClient = *http.Client

// Completion responses stream for as long as the model keeps talking, so the
// client carries no overall timeout. Deadlines come from the request context.
func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext:           dialer.DialContext,
			ForceAttemptHTTP2:     true,
			TLSHandshakeTimeout:   30 * time.Second,
			ResponseHeaderTimeout: 5 * time.Minute,
		},
	}
}
