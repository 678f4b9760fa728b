package config

import (
	"encoding/json"
	"os"
	"strconv"
	"sync"
)

type Config struct {
	CompanyName    string        `json:"companyName"`
	ListenAddr     string        `json:"listenAddr"`
	DatabasePath   string        `json:"databasePath"`
	TaxRatePercent float64       `json:"taxRatePercent"`
	DigestSchedule string        `json:"digestSchedule"`
	ChromePath     string        `json:"chromePath"`
	Gemini         GeminiConfig  `json:"gemini"`
	Storage        StorageConfig `json:"storage"`
}

type GeminiConfig struct {
	APIKey   string `json:"-"`
	Model    string `json:"model"`
	Endpoint string `json:"endpoint"`
}

type StorageConfig struct {
	Endpoint  string `json:"endpoint"`
	Bucket    string `json:"bucket"`
	UseSSL    bool   `json:"useSSL"`
	AccessKey string `json:"-"`
	SecretKey string `json:"-"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

// FilePath is where the settings are persisted.
var FilePath = "./gemtrade_config.json"

// Defaults returns the settings used when no file exists.
func Defaults() Config {
	return Config{
		CompanyName:    "Gemtrade",
		ListenAddr:     ":8080",
		DatabasePath:   "./gemtrade.db",
		TaxRatePercent: 3,
		DigestSchedule: "0 8 * * *",
		Gemini: GeminiConfig{
			Model:    "gemini-2.5-flash-lite",
			Endpoint: "https://generativelanguage.googleapis.com/v1beta/models",
		},
		Storage: StorageConfig{Bucket: "gemtrade-documents"},
	}
}

// LoadConfig reads the settings file, fills defaults and applies secrets
// from the environment. A missing file is not an error.
func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	loaded := Defaults()
	file, err := os.ReadFile(FilePath)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	if err == nil {
		if err := json.Unmarshal(file, &loaded); err != nil {
			return Config{}, err
		}
	}
	fillDefaults(&loaded)
	applyEnv(&loaded)
	cfg = loaded
	return cfg, nil
}

// SaveConfig persists newCfg. Secrets stay in the environment and are
// carried over from the current settings.
func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	fillDefaults(&newCfg)
	newCfg.Gemini.APIKey = cfg.Gemini.APIKey
	newCfg.Storage.AccessKey = cfg.Storage.AccessKey
	newCfg.Storage.SecretKey = cfg.Storage.SecretKey

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(FilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

func fillDefaults(c *Config) {
	d := Defaults()
	if c.CompanyName == "" {
		c.CompanyName = d.CompanyName
	}
	if c.ListenAddr == "" {
		c.ListenAddr = d.ListenAddr
	}
	if c.DatabasePath == "" {
		c.DatabasePath = d.DatabasePath
	}
	if c.TaxRatePercent < 0 {
		c.TaxRatePercent = 0
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = d.Gemini.Model
	}
	if c.Gemini.Endpoint == "" {
		c.Gemini.Endpoint = d.Gemini.Endpoint
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = d.Storage.Bucket
	}
}

func applyEnv(c *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMTRADE_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("GEMTRADE_DB"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		c.Storage.Endpoint = v
	}
	if v := os.Getenv("MINIO_BUCKET"); v != "" {
		c.Storage.Bucket = v
	}
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		c.Storage.UseSSL, _ = strconv.ParseBool(v)
	}
	c.Storage.AccessKey = os.Getenv("MINIO_ACCESS_KEY")
	c.Storage.SecretKey = os.Getenv("MINIO_SECRET_KEY")
}
