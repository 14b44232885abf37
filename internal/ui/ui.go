package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	// Emojis with colors
	MateEmoji    = "🧉"
	SuccessEmoji = Success.Sprint("✅")
	ErrorEmoji   = Error.Sprint("❌")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
)

// Los diagnósticos van siempre a stderr para no mezclarse con el
// resultado en stdout.

// PrintSuccess imprime un mensaje de éxito en stderr
func PrintSuccess(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", SuccessEmoji, msg)
}

// PrintError imprime un mensaje de error en stderr
func PrintError(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorEmoji, msg)
}

// PrintWarning imprime una advertencia en stderr
func PrintWarning(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarningEmoji, msg)
}

// PrintInfo imprime un mensaje informativo en stderr
func PrintInfo(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", InfoEmoji, msg)
}

// PrintDim imprime una línea tenue de diagnóstico en stderr
func PrintDim(msg string) {
	fmt.Fprintln(os.Stderr, Dim.Sprint(msg))
}

// Spinner envuelve el spinner de la terminal. Cuando stderr no es una
// terminal (CI, pipes) todas las operaciones son no-op.
type Spinner struct {
	spinner *spinner.Spinner
}

// NewSpinner crea un spinner con un mensaje inicial
func NewSpinner(message string) *Spinner {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return &Spinner{}
	}

	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+MateEmoji+" "+message),
		spinner.WithWriter(os.Stderr),
	)
	return &Spinner{spinner: s}
}

// Start arranca el spinner
func (s *Spinner) Start() {
	if s.spinner != nil {
		s.spinner.Start()
	}
}

// Stop frena el spinner
func (s *Spinner) Stop() {
	if s.spinner != nil {
		s.spinner.Stop()
	}
}
