package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempFile(t *testing.T) {
	t.Helper()
	old := FilePath
	FilePath = filepath.Join(t.TempDir(), "config.json")
	t.Cleanup(func() { FilePath = old })
}

func TestLoadConfigDefaults(t *testing.T) {
	useTempFile(t)
	t.Setenv("GEMINI_API_KEY", "")

	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ListenAddr != ":8080" || c.DigestSchedule != "0 8 * * *" || c.Gemini.Model != "gemini-2.5-flash-lite" {
		t.Errorf("expected defaults, got %+v", c)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	useTempFile(t)
	os.WriteFile(FilePath, []byte(`{"companyName":"Navratna Gems","taxRatePercent":-4,"digestSchedule":""}`), 0644)
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")

	c, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if c.CompanyName != "Navratna Gems" {
		t.Errorf("expected company from file, got %s", c.CompanyName)
	}
	if c.TaxRatePercent != 0 {
		t.Errorf("expected negative tax clamped to 0, got %v", c.TaxRatePercent)
	}
	if c.DigestSchedule != "" {
		t.Errorf("expected an explicit empty schedule to disable the digest, got %q", c.DigestSchedule)
	}
	if c.Gemini.APIKey != "secret" || c.Storage.Endpoint != "minio:9000" {
		t.Errorf("expected env overrides, got %+v", c)
	}
	if GetConfig().CompanyName != "Navratna Gems" {
		t.Error("expected GetConfig to return the loaded settings")
	}
}

func TestSaveConfigKeepsSecretsOutOfFile(t *testing.T) {
	useTempFile(t)
	t.Setenv("GEMINI_API_KEY", "secret")
	if _, err := LoadConfig(); err != nil {
		t.Fatal(err)
	}

	next := GetConfig()
	next.CompanyName = "Ratna House"
	if err := SaveConfig(next); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(FilePath)
	if strings.Contains(string(b), "secret") {
		t.Errorf("expected API key not to be written, got %s", b)
	}
	if GetConfig().Gemini.APIKey != "secret" {
		t.Error("expected API key kept in memory")
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	useTempFile(t)
	os.WriteFile(FilePath, []byte(`{`), 0644)
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for malformed file")
	}
}
