package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Tomas-vilte/MateBacklog/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func fullItem() models.RefinedItem {
	return models.RefinedItem{
		Title:              "Agregar login",
		Problem:            "Los usuarios no pueden autenticarse.",
		AcceptanceCriteria: []string{"Dado un usuario válido, el login pasa", "Dado un password inválido, el login falla"},
		Estimate:           "M",
		Priority:           "high",
		Rationale:          "Bloquea el resto del flujo.",
		Tags:               []string{"auth", "backend"},
		UserStory:          "As a user, I want to log in, so that I can use the app",
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Run("should render every section of a full item", func(t *testing.T) {
		out := RenderMarkdown([]models.RefinedItem{fullItem()})

		assert.Contains(t, out, "## Agregar login")
		assert.Contains(t, out, "> As a user, I want to log in")
		assert.Contains(t, out, "Los usuarios no pueden autenticarse.")
		assert.Contains(t, out, "**Estimate:** M · **Priority:** high")
		assert.Contains(t, out, "**Rationale:** Bloquea el resto del flujo.")
		assert.Contains(t, out, "### Acceptance Criteria")
		assert.Contains(t, out, "- Dado un usuario válido, el login pasa")
		assert.Contains(t, out, "**Tags:** auth, backend")
	})

	t.Run("should omit sections with absent data", func(t *testing.T) {
		item := models.RefinedItem{
			Title:   "Solo título",
			Problem: "Un problema.",
		}

		out := RenderMarkdown([]models.RefinedItem{item})

		assert.NotContains(t, out, ">")
		assert.NotContains(t, out, "**Estimate:**")
		assert.NotContains(t, out, "**Priority:**")
		assert.NotContains(t, out, "**Rationale:**")
		assert.NotContains(t, out, "Acceptance Criteria")
		assert.NotContains(t, out, "**Tags:**")
	})

	t.Run("should join multiple items with a horizontal rule", func(t *testing.T) {
		items := []models.RefinedItem{
			{Title: "Uno", Problem: "p1"},
			{Title: "Dos", Problem: "p2"},
		}

		out := RenderMarkdown(items)

		assert.Contains(t, out, "\n---\n")
		assert.Contains(t, out, "## Uno")
		assert.Contains(t, out, "## Dos")
	})

	t.Run("should not include a separator for a single item", func(t *testing.T) {
		out := RenderMarkdown([]models.RefinedItem{{Title: "Uno", Problem: "p"}})

		assert.NotContains(t, out, "\n---\n")
	})

	t.Run("should be idempotent over the same input", func(t *testing.T) {
		items := []models.RefinedItem{fullItem(), {Title: "Otro", Problem: "p"}}

		first := RenderMarkdown(items)
		second := RenderMarkdown(items)

		assert.Equal(t, first, second)
	})

	t.Run("should keep acceptance criteria in given order", func(t *testing.T) {
		item := models.RefinedItem{
			Title:              "Ordenado",
			AcceptanceCriteria: []string{"primero", "segundo", "tercero"},
		}

		out := RenderMarkdown([]models.RefinedItem{item})

		assert.NotEqual(t, -1, strings.Index(out, "primero"))
		assert.Less(t, strings.Index(out, "primero"), strings.Index(out, "segundo"))
		assert.Less(t, strings.Index(out, "segundo"), strings.Index(out, "tercero"))
	})
}

func TestRenderJSON(t *testing.T) {
	t.Run("should reserialize the response as indented JSON", func(t *testing.T) {
		resp := &models.RefineResponse{
			Items: []models.RefinedItem{fullItem()},
			Meta:  &models.RefineMeta{Tier: "free", ItemsProcessed: 1},
		}

		out, err := RenderJSON(resp)

		assert.NoError(t, err)

		var roundTrip models.RefineResponse
		assert.NoError(t, json.Unmarshal([]byte(out), &roundTrip))
		assert.Equal(t, resp.Items, roundTrip.Items)
		assert.Equal(t, resp.Meta.Tier, roundTrip.Meta.Tier)
		assert.Contains(t, out, "\n  ")
	})
}
