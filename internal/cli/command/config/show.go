package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateBacklog/internal/config"
	"github.com/Tomas-vilte/MateBacklog/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("config.current", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")
			fmt.Printf("language: %s\n", cfg.Language)
			fmt.Printf("default_format: %s\n", cfg.DefaultFormat)
			fmt.Printf("active_provider: %s\n", cfg.ActiveProvider)
			fmt.Printf("api_base_url: %s\n", cfg.APIBaseURL)
			fmt.Printf("license_key: %s\n", maskKey(cfg.LicenseKey, t))
			fmt.Printf("gemini_api_key: %s\n", maskKey(cfg.GeminiAPIKey, t))
			if cfg.ActiveProvider == config.ProviderGemini {
				fmt.Printf("gemini_model: %s\n", cfg.GeminiModel)
			}
			return nil
		},
	}
}

// maskKey muestra solo los últimos 4 caracteres de una clave
func maskKey(key string, t *i18n.Translations) string {
	if key == "" {
		return t.GetMessage("config.not_set", 0, nil)
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
