package detect

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	// totalBudget es el máximo de caracteres del contexto combinado
	totalBudget = 700
	// fileBudget es el máximo de caracteres extraídos de un archivo de texto plano
	fileBudget = 300
	// maxManifestDeps es el máximo de dependencias listadas en el resumen del manifest
	maxManifestDeps = 8

	separator = " | "
)

type extractorFunc func(data []byte) string

type candidate struct {
	path    string
	extract extractorFunc
}

// candidates es la lista fija de archivos conocidos, en orden de prioridad.
// Los primeros son archivos de instrucciones para agentes, después el README,
// el manifest del proyecto y archivos de schema.
var candidates = []candidate{
	{"CLAUDE.md", plainText},
	{"AGENTS.md", plainText},
	{".cursorrules", plainText},
	{filepath.Join(".github", "copilot-instructions.md"), plainText},
	{"README.md", plainText},
	{"readme.md", plainText},
	{"package.json", manifestSummary},
	{"schema.prisma", plainText},
	{filepath.Join("prisma", "schema.prisma"), plainText},
	{"openapi.yaml", plainText},
}

// Detect recorre los archivos candidatos del directorio y arma un contexto
// combinado de a lo sumo 700 caracteres, separadores incluidos. Retorna el
// contexto y la lista de archivos que aportaron algo, en orden. Los archivos
// ilegibles o malformados se saltean en silencio: la detección es best-effort.
func Detect(dir string) (string, []string) {
	var chunks []string
	var sources []string
	used := 0

	for _, c := range candidates {
		// cada chunk después del primero paga también su separador
		cost := 0
		if len(chunks) > 0 {
			cost = len([]rune(separator))
		}

		remaining := totalBudget - used - cost
		if remaining <= 0 {
			break
		}

		data, err := os.ReadFile(filepath.Join(dir, c.path))
		if err != nil {
			continue
		}

		text := strings.TrimSpace(c.extract(data))
		if text == "" {
			continue
		}

		runes := []rune(text)
		if len(runes) > remaining {
			runes = runes[:remaining]
			text = string(runes)
		}

		chunks = append(chunks, text)
		sources = append(sources, c.path)
		used += cost + len(runes)
	}

	if len(chunks) == 0 {
		return "", nil
	}

	return strings.Join(chunks, separator), sources
}

// plainText extrae los primeros 300 caracteres del archivo, sin espacios al borde
func plainText(data []byte) string {
	text := strings.TrimSpace(string(data))
	runes := []rune(text)
	if len(runes) > fileBudget {
		runes = runes[:fileBudget]
	}
	return string(runes)
}

// manifestSummary resume un package.json en una línea corta:
// nombre, descripción y hasta 8 dependencias en su orden de declaración.
// Un JSON malo devuelve vacío, nunca falla.
func manifestSummary(data []byte) string {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return ""
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ""
	}

	var name, description string
	var runtimeDeps, devDeps []string

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return ""
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return ""
		}

		switch key {
		case "name":
			_ = json.Unmarshal(raw, &name)
		case "description":
			_ = json.Unmarshal(raw, &description)
		case "dependencies":
			runtimeDeps = objectKeysInOrder(raw)
		case "devDependencies":
			devDeps = objectKeysInOrder(raw)
		}
	}

	deps := append(runtimeDeps, devDeps...)
	if len(deps) > maxManifestDeps {
		deps = deps[:maxManifestDeps]
	}

	var parts []string
	if name != "" {
		parts = append(parts, "name: "+name)
	}
	if description != "" {
		parts = append(parts, "description: "+description)
	}
	if len(deps) > 0 {
		parts = append(parts, "deps: "+strings.Join(deps, ", "))
	}

	return strings.Join(parts, "; ")
}

// objectKeysInOrder devuelve las claves de un objeto JSON en el orden en que
// fueron declaradas. map no sirve acá porque pierde el orden del archivo.
func objectKeysInOrder(raw json.RawMessage) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil
		}

		keys = append(keys, key)
	}

	return keys
}
