package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateBacklog/internal/config"
	"github.com/Tomas-vilte/MateBacklog/internal/i18n"
	"github.com/Tomas-vilte/MateBacklog/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-key",
		Usage:     t.GetMessage("config.set_key_usage", 0, nil),
		ArgsUsage: "<license-key>",
		Action: func(ctx context.Context, command *cli.Command) error {
			key := command.Args().First()
			if key == "" {
				return cli.Exit(fmt.Sprintf("usage: %s config set-key <license-key>", command.Root().Name), 1)
			}

			cfg.LicenseKey = key
			if err := config.SaveConfig(cfg); err != nil {
				return cli.Exit(fmt.Sprintf("error al guardar la configuración: %v", err), 1)
			}

			ui.PrintSuccess(t.GetMessage("config.key_saved", 0, nil))
			return nil
		},
	}
}

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config.set_lang_usage", 0, nil),
		ArgsUsage: "<en|es>",
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.Args().First()
			if err := t.SetLanguage(lang); err != nil {
				return cli.Exit(err.Error(), 1)
			}

			cfg.Language = lang
			if err := config.SaveConfig(cfg); err != nil {
				return cli.Exit(fmt.Sprintf("error al guardar la configuración: %v", err), 1)
			}

			ui.PrintSuccess(t.GetMessage("config.lang_saved", 0, map[string]interface{}{
				"Lang": lang,
			}))
			return nil
		},
	}
}

func (c *ConfigCommandFactory) newSetFormatCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-format",
		Usage:     t.GetMessage("config.set_format_usage", 0, nil),
		ArgsUsage: "<markdown|json>",
		Action: func(ctx context.Context, command *cli.Command) error {
			outputFormat := command.Args().First()
			if outputFormat != config.FormatMarkdown && outputFormat != config.FormatJSON {
				return cli.Exit(t.GetMessage("refine.invalid_format", 0, map[string]interface{}{
					"Format": outputFormat,
				}), 1)
			}

			cfg.DefaultFormat = outputFormat
			if err := config.SaveConfig(cfg); err != nil {
				return cli.Exit(fmt.Sprintf("error al guardar la configuración: %v", err), 1)
			}

			ui.PrintSuccess(t.GetMessage("config.format_saved", 0, map[string]interface{}{
				"Format": outputFormat,
			}))
			return nil
		},
	}
}
