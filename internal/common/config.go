package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Pipeline PipelineConfig
	OCR      OCRConfig
	Namer    NamerConfig
	Server   ServerConfig
}

// PipelineConfig holds text-acquisition configuration
type PipelineConfig struct {
	MaxPages   int // pages read per document, small and fixed
	MinTextLen int // below this, direct extraction is considered unusable
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	DPI           int
	TessdataDir   string
}

// NamerConfig holds name-heuristics configuration
type NamerConfig struct {
	LookupPath string // optional company-code JSON file
	Uppercase  bool
}

// ServerConfig holds daemon configuration
type ServerConfig struct {
	HTTPAddr string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			MaxPages:   getEnvAsInt("RENAMER_MAX_PAGES", 2),
			MinTextLen: getEnvAsInt("RENAMER_MIN_TEXT_LEN", 50),
		},
		OCR: OCRConfig{
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			DPI:           getEnvAsInt("OCR_DPI", 144),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
		},
		Namer: NamerConfig{
			LookupPath: getEnv("COMPANY_LOOKUP_PATH", ""),
			Uppercase:  getEnvAsBool("RENAMER_UPPERCASE", false),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Pipeline.MaxPages <= 0 {
		return NewAppError("CONFIG_ERROR", "RENAMER_MAX_PAGES must be positive", ErrInvalidInput)
	}
	if c.Pipeline.MinTextLen < 0 {
		return NewAppError("CONFIG_ERROR", "RENAMER_MIN_TEXT_LEN must not be negative", ErrInvalidInput)
	}
	if c.OCR.DPI <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_DPI must be positive", ErrInvalidInput)
	}
	return nil
}
