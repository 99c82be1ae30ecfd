package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		SessionSignKey  string   `json:"session_sign_key"`
		SessionDuration Duration `json:"session_duration"`
		LogLevel        string   `json:"log_level"`
		Version         string   `json:"version"`
	} `json:"app,omitempty"`

	Uploads struct {
		Killswitch            bool     `json:"killswitch"`
		MaxPendingSubmissions int      `json:"max_pending_submissions"`
		MinPhotoDimension     int      `json:"min_photo_dimension"`
		MaxDescriptionLength  int      `json:"max_description_length"`
		ReasonTTL             Duration `json:"reason_ttl"`
		RedirectURL           string   `json:"redirect_url"`
		MaxMultipartMemory    int64    `json:"max_multipart_memory"`
		MaxUploadSize         int64    `json:"max_upload_size"`
		AllowedSubmitters     []int64  `json:"allowed_submitters"`
	} `json:"uploads,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			PhotoDir string `json:"photo_dir"`
		} `json:"files,omitempty"`

		ReasonBackend string `json:"reason_backend"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		CleanupInterval Duration `json:"cleanup_interval"`
		HealthInterval  Duration `json:"health_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			SessionSignKey:  jsonCfg.App.SessionSignKey,
			SessionDuration: time.Duration(jsonCfg.App.SessionDuration),
			LogLevel:        jsonCfg.App.LogLevel,
			Version:         jsonCfg.App.Version,
		},
		Uploads: Uploads{
			Killswitch:            jsonCfg.Uploads.Killswitch,
			MaxPendingSubmissions: jsonCfg.Uploads.MaxPendingSubmissions,
			MinPhotoDimension:     jsonCfg.Uploads.MinPhotoDimension,
			MaxDescriptionLength:  jsonCfg.Uploads.MaxDescriptionLength,
			ReasonTTL:             time.Duration(jsonCfg.Uploads.ReasonTTL),
			RedirectURL:           jsonCfg.Uploads.RedirectURL,
			MaxMultipartMemory:    jsonCfg.Uploads.MaxMultipartMemory,
			MaxUploadSize:         jsonCfg.Uploads.MaxUploadSize,
			AllowedSubmitters:     jsonCfg.Uploads.AllowedSubmitters,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				PhotoDir: jsonCfg.Storage.Files.PhotoDir,
			},
			ReasonBackend: jsonCfg.Storage.ReasonBackend,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			GRPCAddress:    jsonCfg.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			CleanupInterval: time.Duration(jsonCfg.Workers.CleanupInterval),
			HealthInterval:  time.Duration(jsonCfg.Workers.HealthInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
