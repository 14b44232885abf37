package enforce

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Tomas-vilte/MateBacklog/internal/config"
	domainerrors "github.com/Tomas-vilte/MateBacklog/internal/domain/errors"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/models"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/ports"
	"github.com/Tomas-vilte/MateBacklog/internal/i18n"
	"github.com/Tomas-vilte/MateBacklog/internal/ui"
	"github.com/urfave/cli/v3"
)

const defaultMinScore = 80

// IssueFetcherProvider construye el cliente del tracker para un repo dado
type IssueFetcherProvider func(owner, repo, token string) ports.IssueFetcher

// IssueLinterProvider construye el cliente del servicio de puntuación
type IssueLinterProvider func(cfg *config.Config) ports.IssueLinter

// CommandFactory arma el subcomando enforce: trae un issue de GitHub,
// lo puntúa y corta el CI si no llega al puntaje mínimo.
type CommandFactory struct {
	fetcherProvider IssueFetcherProvider
	linterProvider  IssueLinterProvider
	out             io.Writer
}

// NewCommandFactory crea una nueva instancia del factory
func NewCommandFactory(fetcherProvider IssueFetcherProvider, linterProvider IssueLinterProvider, out io.Writer) *CommandFactory {
	return &CommandFactory{
		fetcherProvider: fetcherProvider,
		linterProvider:  linterProvider,
		out:             out,
	}
}

// CreateCommand crea el comando enforce
func (f *CommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "enforce",
		Usage:  t.GetMessage("enforce.command_usage", 0, nil),
		Flags:  f.createFlags(t),
		Action: f.createAction(t, cfg),
	}
}

func (f *CommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "issue",
			Usage: t.GetMessage("enforce.flag_issue", 0, nil),
		},
		&cli.StringFlag{
			Name:  "repo",
			Usage: t.GetMessage("enforce.flag_repo", 0, nil),
		},
		&cli.IntFlag{
			Name:  "min-score",
			Usage: t.GetMessage("enforce.flag_min_score", 0, nil),
			Value: defaultMinScore,
		},
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   t.GetMessage("enforce.flag_key", 0, nil),
		},
		&cli.StringFlag{
			Name:  "github-token",
			Usage: t.GetMessage("enforce.flag_github_token", 0, nil),
		},
	}
}

func (f *CommandFactory) createAction(t *i18n.Translations, cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		issueNumber := int(command.Int("issue"))
		repo := command.String("repo")

		// Los requeridos se validan antes de tocar la red
		if issueNumber <= 0 {
			ui.PrintError(t.GetMessage("enforce.missing_issue", 0, nil))
			return cli.Exit("", 1)
		}
		if repo == "" {
			ui.PrintError(t.GetMessage("enforce.missing_repo", 0, nil))
			return cli.Exit("", 1)
		}

		owner, name, ok := splitRepo(repo)
		if !ok {
			ui.PrintError(t.GetMessage("enforce.invalid_repo", 0, map[string]interface{}{
				"Repo": repo,
			}))
			return cli.Exit("", 1)
		}

		token := command.String("github-token")
		if token == "" {
			token = os.Getenv("GITHUB_TOKEN")
		}

		fetcher := f.fetcherProvider(owner, name, token)

		spin := ui.NewSpinner(t.GetMessage("enforce.fetching", 0, map[string]interface{}{
			"Number": issueNumber,
			"Repo":   repo,
		}))
		spin.Start()
		issue, err := fetcher.FetchIssue(ctx, issueNumber)
		spin.Stop()

		if err != nil {
			var notFoundErr *domainerrors.IssueNotFoundError
			if errors.As(err, &notFoundErr) {
				ui.PrintError(t.GetMessage("enforce.issue_not_found", 0, map[string]interface{}{
					"Number": issueNumber,
					"Repo":   repo,
				}))
				return cli.Exit("", 1)
			}
			ui.PrintError(err.Error())
			return cli.Exit("", 1)
		}

		licenseKey := command.String("key")
		if licenseKey == "" {
			licenseKey = cfg.LicenseKey
		}

		linter := f.linterProvider(cfg)

		spin = ui.NewSpinner(t.GetMessage("enforce.scoring", 0, nil))
		spin.Start()
		result, err := linter.LintIssue(ctx, issue, licenseKey)
		spin.Stop()

		if err != nil {
			var formatErr *domainerrors.ResponseFormatError
			if errors.As(err, &formatErr) {
				ui.PrintError(t.GetMessage("refine.bad_response", 0, map[string]interface{}{
					"Excerpt": formatErr.Excerpt,
				}))
				return cli.Exit("", 1)
			}
			ui.PrintError(err.Error())
			return cli.Exit("", 1)
		}

		minScore := int(command.Int("min-score"))
		return f.report(t, issue, result, minScore, repo)
	}
}

// report imprime el resumen y decide el código de salida: 0 cuando el
// puntaje alcanza el umbral, 1 cuando queda abajo
func (f *CommandFactory) report(t *i18n.Translations, issue *models.IssueRecord, result *models.LintResult, minScore int, repo string) error {
	scoreLine := t.GetMessage("enforce.score_line", 0, map[string]interface{}{
		"Score":    result.Score,
		"MinScore": minScore,
	})
	readyLine := t.GetMessage("enforce.agent_ready", 0, map[string]interface{}{
		"Ready": result.AgentReady,
	})
	issueLine := t.GetMessage("enforce.issue_line", 0, map[string]interface{}{
		"Number": issue.Number,
		"Title":  issue.Title,
	})

	if result.Score >= minScore {
		ui.PrintSuccess(t.GetMessage("enforce.passed", 0, nil))
		fmt.Fprintln(f.out, scoreLine)
		fmt.Fprintln(f.out, readyLine)
		fmt.Fprintln(f.out, issueLine)
		return nil
	}

	ui.PrintError(t.GetMessage("enforce.failed", 0, nil))
	fmt.Fprintln(f.out, scoreLine)
	fmt.Fprintln(f.out, readyLine)
	fmt.Fprintln(f.out, issueLine)

	failing := result.FailingChecks()
	if len(failing) > 0 {
		sort.Strings(failing)
		fmt.Fprintln(f.out, t.GetMessage("enforce.failing_checks", 0, nil))
		for _, name := range failing {
			check := result.Checks[name]
			if check.Message != "" {
				fmt.Fprintf(f.out, "  - %s: %s\n", name, check.Message)
			} else {
				fmt.Fprintf(f.out, "  - %s\n", name)
			}
		}
	}

	fmt.Fprintln(f.out, t.GetMessage("enforce.remediation", 0, map[string]interface{}{
		"Number": issue.Number,
		"Repo":   repo,
	}))

	return cli.Exit("", 1)
}

func splitRepo(repo string) (string, string, bool) {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
