package config

import (
	"github.com/Tomas-vilte/MateBacklog/internal/config"
	"github.com/Tomas-vilte/MateBacklog/internal/i18n"
	"github.com/urfave/cli/v3"
)

// ConfigCommandFactory arma el comando config y sus subcomandos
type ConfigCommandFactory struct{}

// NewConfigCommandFactory crea una nueva instancia del factory
func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

// CreateCommand crea el comando config
func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config.command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newSetKeyCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetFormatCommand(t, cfg),
		},
	}
}
