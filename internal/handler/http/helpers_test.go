package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/metrics"
	"github.com/MKhiriev/go-photo-gate/internal/mock"
	"github.com/MKhiriev/go-photo-gate/internal/service"
	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRedirectURL = "https://photos.example.org/submit-photo/"

// fixture bundles a Handler with mocked services.
type fixture struct {
	handler *Handler
	metrics *metrics.Metrics

	auth        *mock.MockAuthService
	submitters  *mock.MockSubmitterService
	submissions *mock.MockSubmissionService
	notices     *mock.MockNoticeService
	eligibility *mock.MockEligibilityService
	appInfo     *mock.MockAppInfoService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		metrics:     metrics.New(prometheus.NewRegistry()),
		auth:        mock.NewMockAuthService(ctrl),
		submitters:  mock.NewMockSubmitterService(ctrl),
		submissions: mock.NewMockSubmissionService(ctrl),
		notices:     mock.NewMockNoticeService(ctrl),
		eligibility: mock.NewMockEligibilityService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:        f.auth,
		SubmitterService:   f.submitters,
		SubmissionService:  f.submissions,
		NoticeService:      f.notices,
		EligibilityService: f.eligibility,
		AppInfoService:     f.appInfo,
	}
	f.handler = NewHandler(services, f.metrics, config.Uploads{RedirectURL: testRedirectURL}, logger.Nop())

	return f
}

// expectNewSession makes the auth mock issue one fresh session.
func (f *fixture) expectNewSession(sessionID string) {
	f.auth.EXPECT().CreateSessionToken(gomock.Any()).
		Return(models.Token{SignedString: "session-" + sessionID, SessionID: sessionID}, nil)
}

// serve runs req through the full router.
func (f *fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.Init().ServeHTTP(rec, req)
	return rec
}

// capture returns a handler that records the request it receives.
func capture(got **http.Request) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = r
		w.WriteHeader(http.StatusNoContent)
	})
}

type formFile struct {
	name    string
	content []byte
}

// multipartRequest builds a POST /api/photos/submit request.
func multipartRequest(t *testing.T, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	for _, file := range files {
		part, err := mw.CreateFormFile("files", file.name)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/photos/submit", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func readAll(t *testing.T, file models.UploadedFile) []byte {
	t.Helper()

	rc, err := file.Open()
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return data
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}
