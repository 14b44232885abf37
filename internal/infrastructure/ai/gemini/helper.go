package gemini

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\n?(.*?)```")

// ExtractJSON extrae un bloque JSON válido del texto del modelo, tolerando
// fences de markdown y texto extra alrededor. Si no encuentra nada válido
// devuelve el texto tal cual para que el error de parseo sea informativo.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	for _, m := range fenceRe.FindAllStringSubmatch(text, -1) {
		if len(m) > 1 {
			candidate := strings.TrimSpace(m[1])
			if json.Valid([]byte(candidate)) {
				return candidate
			}
		}
	}

	if block := balancedBlock(text); block != "" {
		return block
	}

	return text
}

// balancedBlock busca el primer bloque {...} o [...] balanceado y válido,
// ignorando llaves dentro de strings
func balancedBlock(text string) string {
	start := strings.IndexAny(text, "{[")
	if start == -1 {
		return ""
	}

	opener := text[start]
	closer := byte('}')
	if opener == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		char := text[i]
		if escaped {
			escaped = false
			continue
		}
		if char == '\\' {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if char == opener {
			depth++
		} else if char == closer {
			depth--
			if depth == 0 {
				block := text[start : i+1]
				if json.Valid([]byte(block)) {
					return block
				}
				return ""
			}
		}
	}

	return ""
}
