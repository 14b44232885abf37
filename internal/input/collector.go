package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	domainerrors "github.com/Tomas-vilte/MateBacklog/internal/domain/errors"
)

// Collector junta items de backlog desde argumentos, un archivo opcional
// y stdin. El orden es siempre: argumentos, archivo, stdin.
type Collector struct {
	stdin      io.Reader
	isTerminal bool
}

// NewCollector crea un collector. isTerminal indica si stdin está atado a
// una terminal interactiva; en ese caso no se lee stdin para no bloquear.
func NewCollector(stdin io.Reader, isTerminal bool) *Collector {
	return &Collector{
		stdin:      stdin,
		isTerminal: isTerminal,
	}
}

// Collect retorna la lista ordenada de items no vacíos y recortados.
// Un --file inexistente es un error directo, antes de tocar la red.
func (c *Collector) Collect(args []string, filePath string) ([]string, error) {
	var items []string

	for _, arg := range args {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	if filePath != "" {
		fileItems, err := c.readFile(filePath)
		if err != nil {
			return nil, err
		}
		items = append(items, fileItems...)
	}

	if !c.isTerminal {
		stdinItems, err := c.readLines(c.stdin)
		if err != nil {
			return nil, err
		}
		items = append(items, stdinItems...)
	}

	return items, nil
}

func (c *Collector) readFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, domainerrors.NewFileAccessError(path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return c.readLines(file)
}

func (c *Collector) readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
