package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// probeError turns a health probe response into nil for any 2xx and into
// one of the adapter errors otherwise. The body is kept for the log.
func probeError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := strings.TrimSpace(string(resp.Body()))
	if detail == "" {
		detail = http.StatusText(code)
	}

	switch code {
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrClassifierDegraded, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrHealthEndpointMissing, detail)
	default:
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, code, detail)
	}
}
