package refine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Tomas-vilte/MateBacklog/internal/config"
	"github.com/Tomas-vilte/MateBacklog/internal/detect"
	domainerrors "github.com/Tomas-vilte/MateBacklog/internal/domain/errors"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/models"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/ports"
	"github.com/Tomas-vilte/MateBacklog/internal/format"
	"github.com/Tomas-vilte/MateBacklog/internal/i18n"
	"github.com/Tomas-vilte/MateBacklog/internal/input"
	"github.com/Tomas-vilte/MateBacklog/internal/ui"
	"github.com/urfave/cli/v3"
)

// RefinerProvider construye el refiner para el proveedor elegido.
// Se inyecta desde main para poder simularlo en los tests.
type RefinerProvider func(ctx context.Context, provider string, cfg *config.Config) (ports.Refiner, error)

// CommandFactory arma los flags y la acción del flujo principal de
// refinamiento, que vive en el comando raíz.
type CommandFactory struct {
	collector       *input.Collector
	refinerProvider RefinerProvider
	workDir         string
	out             io.Writer
}

// NewCommandFactory crea una nueva instancia del factory
func NewCommandFactory(collector *input.Collector, refinerProvider RefinerProvider, workDir string, out io.Writer) *CommandFactory {
	return &CommandFactory{
		collector:       collector,
		refinerProvider: refinerProvider,
		workDir:         workDir,
		out:             out,
	}
}

// CreateFlags define los flags del comando raíz
func (f *CommandFactory) CreateFlags(t *i18n.Translations, cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   t.GetMessage("refine.flag_file", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "user-stories",
			Usage: t.GetMessage("refine.flag_user_stories", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "gherkin",
			Usage: t.GetMessage("refine.flag_gherkin", 0, nil),
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: t.GetMessage("refine.flag_format", 0, nil),
			Value: cfg.DefaultFormat,
		},
		&cli.StringFlag{
			Name:    "context",
			Aliases: []string{"c"},
			Usage:   t.GetMessage("refine.flag_context", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "no-auto-context",
			Usage: t.GetMessage("refine.flag_no_auto_context", 0, nil),
		},
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   t.GetMessage("refine.flag_key", 0, nil),
		},
		&cli.StringFlag{
			Name:  "provider",
			Usage: t.GetMessage("refine.flag_provider", 0, nil),
			Value: cfg.ActiveProvider,
		},
	}
}

// CreateAction arma la acción del comando raíz: juntar items, detectar
// contexto, hacer el request y renderizar la respuesta
func (f *CommandFactory) CreateAction(t *i18n.Translations, cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		outputFormat := command.String("format")
		if outputFormat != config.FormatMarkdown && outputFormat != config.FormatJSON {
			ui.PrintError(t.GetMessage("refine.invalid_format", 0, map[string]interface{}{
				"Format": outputFormat,
			}))
			return cli.Exit("", 1)
		}

		items, err := f.collector.Collect(command.Args().Slice(), command.String("file"))
		if err != nil {
			var fileErr *domainerrors.FileAccessError
			if errors.As(err, &fileErr) {
				ui.PrintError(t.GetMessage("refine.file_not_found", 0, map[string]interface{}{
					"Path": fileErr.Path,
				}))
				return cli.Exit("", 1)
			}
			return cli.Exit(err.Error(), 1)
		}

		if len(items) == 0 {
			ui.PrintError(t.GetMessage("refine.no_items", 0, nil))
			_ = cli.ShowAppHelp(command)
			return cli.Exit("", 1)
		}

		opts := models.RefineOptions{
			Context:        f.resolveContext(command, t),
			UseUserStories: command.Bool("user-stories"),
			UseGherkin:     command.Bool("gherkin"),
			LicenseKey:     f.resolveKey(command, cfg),
		}

		refiner, err := f.refinerProvider(ctx, command.String("provider"), cfg)
		if err != nil {
			ui.PrintError(err.Error())
			return cli.Exit("", 1)
		}

		spin := ui.NewSpinner(t.GetMessage("refine.refining", len(items), map[string]interface{}{
			"Count": len(items),
		}))
		spin.Start()
		resp, err := refiner.Refine(ctx, items, opts)
		spin.Stop()

		if err != nil {
			ui.PrintError(f.translateRefineError(t, err))
			return cli.Exit("", 1)
		}

		return f.renderResponse(resp, outputFormat)
	}
}

// resolveContext prioriza el contexto explícito; sin él, y salvo que se
// pida lo contrario, intenta autodetectarlo del directorio de trabajo
func (f *CommandFactory) resolveContext(command *cli.Command, t *i18n.Translations) string {
	if explicit := command.String("context"); explicit != "" {
		return explicit
	}
	if command.Bool("no-auto-context") {
		return ""
	}

	detected, sources := detect.Detect(f.workDir)
	if detected == "" {
		return ""
	}

	ui.PrintDim(t.GetMessage("refine.auto_context_sources", 0, map[string]interface{}{
		"Sources": strings.Join(sources, ", "),
	}))
	return detected
}

func (f *CommandFactory) resolveKey(command *cli.Command, cfg *config.Config) string {
	if key := command.String("key"); key != "" {
		return key
	}
	return cfg.LicenseKey
}

func (f *CommandFactory) translateRefineError(t *i18n.Translations, err error) string {
	var rateLimitErr *domainerrors.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return t.GetMessage("refine.rate_limited", 0, nil)
	}

	var payloadErr *domainerrors.PayloadTooLargeError
	if errors.As(err, &payloadErr) {
		return t.GetMessage("refine.payload_too_large", 0, nil)
	}

	var apiErr *domainerrors.APIError
	if errors.As(err, &apiErr) {
		return t.GetMessage("refine.api_error", 0, map[string]interface{}{
			"Status": apiErr.Status,
		})
	}

	var formatErr *domainerrors.ResponseFormatError
	if errors.As(err, &formatErr) {
		return t.GetMessage("refine.bad_response", 0, map[string]interface{}{
			"Excerpt": formatErr.Excerpt,
		})
	}

	return err.Error()
}

func (f *CommandFactory) renderResponse(resp *models.RefineResponse, outputFormat string) error {
	if outputFormat == config.FormatJSON {
		rendered, err := format.RenderJSON(resp)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		fmt.Fprintln(f.out, rendered)
		return nil
	}

	fmt.Fprintln(f.out, format.RenderMarkdown(resp.Items))
	return nil
}
