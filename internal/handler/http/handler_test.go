package http

import (
	"testing"

	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestNewHandler_StoresConfig(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, nil, config.Uploads{RedirectURL: "/submit", MaxMultipartMemory: 1024, MaxUploadSize: 4096}, logger.Nop())

	assert.Same(t, svc, h.services)
	assert.Equal(t, "/submit", h.redirectURL)
	assert.Equal(t, int64(1024), h.maxMultipartMemory)
	assert.Equal(t, int64(4096), h.maxUploadSize)
}

func TestNewHandler_DefaultMultipartMemory(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, config.Uploads{}, logger.Nop())

	assert.Equal(t, int64(defaultMaxMultipartMemory), h.maxMultipartMemory)
	assert.Equal(t, int64(defaultMaxUploadSize), h.maxUploadSize)
}
