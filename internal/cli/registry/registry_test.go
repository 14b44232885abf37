package registry

import (
	"testing"

	"github.com/Tomas-vilte/MateBacklog/internal/config"
	"github.com/Tomas-vilte/MateBacklog/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

type mockCommandFactory struct {
	name string
}

func (m *mockCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name: m.name,
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register new factory successfully", func(t *testing.T) {
		cfg := &config.Config{}
		translations, err := i18n.NewTranslations("en", "../../../locales")
		assert.NoError(t, err)
		registry := NewRegistry(cfg, translations)
		factory := &mockCommandFactory{name: "mock-command"}

		// act
		err = registry.Register("test-command", factory)

		// assert
		assert.NoError(t, err)
		assert.Len(t, registry.factories, 1)
		assert.Contains(t, registry.factories, "test-command")
	})

	t.Run("should return error when registering duplicate factory", func(t *testing.T) {
		// arrange
		cfg := &config.Config{}
		translations, err := i18n.NewTranslations("en", "../../../locales")
		assert.NoError(t, err)
		registry := NewRegistry(cfg, translations)
		factory := &mockCommandFactory{name: "mock-command"}

		// act
		_ = registry.Register("test-command", factory)
		err = registry.Register("test-command", factory)

		// assert
		assert.Error(t, err)
		assert.Len(t, registry.factories, 1)
	})
}

func TestRegistry_CreateCommands(t *testing.T) {
	t.Run("should create commands in registration order", func(t *testing.T) {
		// Arrange
		cfg := &config.Config{}
		translations, err := i18n.NewTranslations("en", "../../../locales")
		assert.NoError(t, err)
		registry := NewRegistry(cfg, translations)

		_ = registry.Register("enforce", &mockCommandFactory{name: "enforce"})
		_ = registry.Register("config", &mockCommandFactory{name: "config"})

		// Act
		commands := registry.CreateCommands()

		// Assert
		assert.Len(t, commands, 2)
		assert.Equal(t, "enforce", commands[0].Name)
		assert.Equal(t, "config", commands[1].Name)
	})

	t.Run("should return empty slice when no factories registered", func(t *testing.T) {
		// Arrange
		cfg := &config.Config{}
		translations, err := i18n.NewTranslations("en", "../../../locales")
		assert.NoError(t, err)
		registry := NewRegistry(cfg, translations)

		// Act
		commands := registry.CreateCommands()

		// Assert
		assert.Empty(t, commands)
	})
}

func TestNewRegistry(t *testing.T) {
	t.Run("should create new registry with empty factories", func(t *testing.T) {
		// Arrange
		cfg := &config.Config{}
		translations, err := i18n.NewTranslations("en", "../../../locales")
		assert.NoError(t, err)

		// Act
		registry := NewRegistry(cfg, translations)

		// Assert
		assert.NotNil(t, registry)
		assert.Empty(t, registry.factories)
		assert.Equal(t, cfg, registry.config)
		assert.Equal(t, translations, registry.t)
	})
}
