package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.BaseURL != "http://localhost:8080" {
		t.Errorf("base url = %q", cfg.Server.BaseURL)
	}
	if cfg.Images.Bucket != "campshare" {
		t.Errorf("bucket = %q, want campshare", cfg.Images.Bucket)
	}
	if cfg.DevMode {
		t.Error("dev mode should default to false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CS_DEV_MODE", "true")
	t.Setenv("CS_DB_PATH", "/tmp/test.db")
	t.Setenv("CS_HTTP_PORT", "9090")
	t.Setenv("CS_GEOCODER_KEY", "secret-key")
	t.Setenv("CS_S3_ENDPOINT", "minio.internal:9000")
	t.Setenv("CS_S3_USE_SSL", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.DevMode {
		t.Error("dev mode not set")
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Geocoder.Key != "secret-key" {
		t.Errorf("geocoder key = %q", cfg.Geocoder.Key)
	}
	if cfg.Images.Endpoint != "minio.internal:9000" {
		t.Errorf("endpoint = %q", cfg.Images.Endpoint)
	}
	if !cfg.Images.UseSSL {
		t.Error("use ssl not set")
	}
}
