package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"serviceArea": map[string]any{
			"minLatitude": 16,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SERVICEAREA_MINLATITUDE", want: "serviceArea.minLatitude"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth == nil || cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("AccessTokenTTL not defaulted: %+v", cfg.Auth)
	}
	if cfg.ServiceArea == nil || cfg.ServiceArea.MinLatitude != 16 || cfg.ServiceArea.MaxLongitude != 56 {
		t.Fatalf("ServiceArea not defaulted: %+v", cfg.ServiceArea)
	}
	if cfg.QRCode == nil || cfg.QRCode.Size != defaultQRCodeSize {
		t.Fatalf("QRCode not defaulted: %+v", cfg.QRCode)
	}
	if cfg.Storage == nil || cfg.Storage.MaxImageSize != defaultMaxImageSize {
		t.Fatalf("Storage not defaulted: %+v", cfg.Storage)
	}
	if cfg.Worker == nil || cfg.Worker.Port != defaultWorkerPort {
		t.Fatalf("Worker not defaulted: %+v", cfg.Worker)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:   &AuthConfig{AccessTokenTTL: 5 * time.Minute},
		QRCode: &QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != "1MB" {
		t.Fatalf("MaxRequestBodySize overwritten: %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.Auth.AccessTokenTTL != 5*time.Minute {
		t.Fatalf("AccessTokenTTL overwritten: %v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.QRCode.Size != 512 {
		t.Fatalf("QRCode.Size overwritten: %d", cfg.QRCode.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "inverted latitude", mutate: func(cfg *Config) { cfg.ServiceArea.MinLatitude = 40 }, wantErr: true},
		{name: "latitude out of range", mutate: func(cfg *Config) { cfg.ServiceArea.MaxLatitude = 91 }, wantErr: true},
		{name: "unknown pubsub provider", mutate: func(cfg *Config) { cfg.PubSub = &PubSubConfig{Provider: "kafka"} }, wantErr: true},
		{name: "google pubsub provider", mutate: func(cfg *Config) { cfg.PubSub = &PubSubConfig{Provider: "google"} }},
		{name: "bad http port", mutate: func(cfg *Config) { cfg.HTTP.Port = 70000 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			if err := cfg.validate(); (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
