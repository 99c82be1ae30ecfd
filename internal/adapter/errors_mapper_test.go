package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantDetail string
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "degraded", status: http.StatusServiceUnavailable, body: "model loading\n", wantErr: ErrClassifierDegraded, wantDetail: "model loading"},
		{name: "wrong base url", status: http.StatusNotFound, wantErr: ErrHealthEndpointMissing, wantDetail: "Not Found"},
		{name: "crash", status: http.StatusInternalServerError, body: "panic", wantErr: ErrUnexpectedStatus, wantDetail: "500: panic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := resty.New().R().Get(srv.URL + healthPath)
			require.NoError(t, err)

			err = probeError(resp)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantDetail)
		})
	}
}
