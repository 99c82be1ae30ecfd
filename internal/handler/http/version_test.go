package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_PlainText(t *testing.T) {
	f := newFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := httptest.NewRecorder()
	f.handler.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestGetServerVersion_JSON(t *testing.T) {
	f := newFixture(t)
	want := models.VersionInfo{Version: "1.2.3", BuildDate: "2026-10-01", BuildCommit: "abc123"}
	f.appInfo.EXPECT().GetVersionInfo(gomock.Any()).Return(want)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	f.handler.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.VersionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}
