package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateBacklog/internal/domain/models"
)

// RenderJSON reserializa la respuesta como JSON indentado
func RenderJSON(resp *models.RefineResponse) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error al serializar la respuesta: %w", err)
	}
	return string(data), nil
}

// RenderMarkdown arma un documento markdown con un bloque por item.
// Las secciones sin datos se omiten por completo, nunca se rellenan
// con texto placeholder.
func RenderMarkdown(items []models.RefinedItem) string {
	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, renderItem(item))
	}
	return strings.Join(blocks, "\n---\n\n")
}

func renderItem(item models.RefinedItem) string {
	var sb strings.Builder

	sb.WriteString("## " + item.Title + "\n\n")

	if item.UserStory != "" {
		sb.WriteString("> " + item.UserStory + "\n\n")
	}

	if item.Problem != "" {
		sb.WriteString(item.Problem + "\n\n")
	}

	if line := summaryLine(item); line != "" {
		sb.WriteString(line + "\n\n")
	}

	if item.Rationale != "" {
		sb.WriteString("**Rationale:** " + item.Rationale + "\n\n")
	}

	if len(item.AcceptanceCriteria) > 0 {
		sb.WriteString("### Acceptance Criteria\n\n")
		for _, criterion := range item.AcceptanceCriteria {
			sb.WriteString("- " + criterion + "\n")
		}
		sb.WriteString("\n")
	}

	if len(item.Tags) > 0 {
		sb.WriteString("**Tags:** " + strings.Join(item.Tags, ", ") + "\n\n")
	}

	return sb.String()
}

func summaryLine(item models.RefinedItem) string {
	var parts []string
	if item.Estimate != "" {
		parts = append(parts, "**Estimate:** "+item.Estimate)
	}
	if item.Priority != "" {
		parts = append(parts, "**Priority:** "+item.Priority)
	}
	return strings.Join(parts, " · ")
}
