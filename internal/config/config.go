package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	Language       string `json:"language"`
	DefaultFormat  string `json:"default_format"`
	LicenseKey     string `json:"license_key,omitempty"`
	APIBaseURL     string `json:"api_base_url"`
	ActiveProvider string `json:"active_provider"` // "api" o "gemini"
	GeminiAPIKey   string `json:"gemini_api_key,omitempty"`
	GeminiModel    string `json:"gemini_model,omitempty"`
	PathFile       string `json:"path_file"`
}

const (
	defaultLang        = "en"
	defaultFormat      = "markdown"
	defaultAPIBaseURL  = "https://api.matebacklog.dev/v1"
	defaultProvider    = "api"
	defaultGeminiModel = "gemini-2.0-flash"

	FormatMarkdown = "markdown"
	FormatJSON     = "json"

	ProviderAPI    = "api"
	ProviderGemini = "gemini"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".mate-backlog")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	applyDefaults(&config)
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:       defaultLang,
		DefaultFormat:  defaultFormat,
		APIBaseURL:     defaultAPIBaseURL,
		ActiveProvider: defaultProvider,
		GeminiModel:    defaultGeminiModel,
		PathFile:       path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.DefaultFormat == "" {
		config.DefaultFormat = defaultFormat
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = defaultAPIBaseURL
	}
	if config.ActiveProvider == "" {
		config.ActiveProvider = defaultProvider
	}
	if config.GeminiModel == "" {
		config.GeminiModel = defaultGeminiModel
	}
}

func validateConfig(config *Config) error {
	if config.DefaultFormat != FormatMarkdown && config.DefaultFormat != FormatJSON {
		return fmt.Errorf("formato por defecto inválido: %s", config.DefaultFormat)
	}
	if config.ActiveProvider != ProviderAPI && config.ActiveProvider != ProviderGemini {
		return fmt.Errorf("proveedor inválido: %s", config.ActiveProvider)
	}
	return nil
}
