package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	configcmd "github.com/Tomas-vilte/MateBacklog/internal/cli/command/config"
	"github.com/Tomas-vilte/MateBacklog/internal/cli/command/enforce"
	refinecmd "github.com/Tomas-vilte/MateBacklog/internal/cli/command/refine"
	"github.com/Tomas-vilte/MateBacklog/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateBacklog/internal/config"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/ports"
	"github.com/Tomas-vilte/MateBacklog/internal/i18n"
	"github.com/Tomas-vilte/MateBacklog/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateBacklog/internal/infrastructure/lint"
	refineapi "github.com/Tomas-vilte/MateBacklog/internal/infrastructure/refine"
	"github.com/Tomas-vilte/MateBacklog/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateBacklog/internal/input"
	"github.com/Tomas-vilte/MateBacklog/internal/services"
	"github.com/Tomas-vilte/MateBacklog/internal/version"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	// .env es opcional, se ignora si no existe
	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio actual: %w", err)
	}

	refinerProvider := func(ctx context.Context, provider string, c *cfg.Config) (ports.Refiner, error) {
		if provider == cfg.ProviderGemini {
			return gemini.NewRefiner(ctx, c)
		}
		return refineapi.NewClient(c.APIBaseURL, &http.Client{}), nil
	}

	fetcherProvider := func(owner, repo, token string) ports.IssueFetcher {
		return github.NewGitHubClient(owner, repo, token)
	}

	linterProvider := func(c *cfg.Config) ports.IssueLinter {
		return lint.NewClient(c.APIBaseURL, &http.Client{})
	}

	collector := input.NewCollector(os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
	refineFactory := refinecmd.NewCommandFactory(collector, refinerProvider, workDir, os.Stdout)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("enforce", enforce.NewCommandFactory(fetcherProvider, linterProvider, os.Stdout)); err != nil {
		log.Fatalf("Error al registrar el comando 'enforce': %v", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	go func() {
		checker := services.NewVersionChecker(version.FullVersion(), translations)
		checker.CheckForUpdates(context.Background())
	}()

	return &cli.Command{
		Name:                  "mate-backlog",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		ArgsUsage:             "[items...]",
		Flags:                 refineFactory.CreateFlags(translations, cfgApp),
		Action:                refineFactory.CreateAction(translations, cfgApp),
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
