package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateBacklog/internal/config"
	domainerrors "github.com/Tomas-vilte/MateBacklog/internal/domain/errors"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/models"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/ports"
	"google.golang.org/genai"
)

var _ ports.Refiner = (*Refiner)(nil)

// Refiner refina items llamando directo a Gemini, sin pasar por la API
// hosteada. Útil para quien trae su propia key.
type Refiner struct {
	client *genai.Client
	model  string
}

// NewRefiner crea el proveedor Gemini a partir de la configuración
func NewRefiner(ctx context.Context, cfg *config.Config) (*Refiner, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, domainerrors.NewProviderNotConfiguredError("gemini", "falta la API key")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error al crear el cliente de Gemini: %w", err)
	}

	return &Refiner{
		client: client,
		model:  cfg.GeminiModel,
	}, nil
}

// Refine arma el prompt con los items y parsea la respuesta JSON del modelo
// a la misma forma que devuelve la API hosteada
func (r *Refiner) Refine(ctx context.Context, items []string, opts models.RefineOptions) (*models.RefineResponse, error) {
	prompt := buildPrompt(items, opts)

	genCfg := &genai.GenerateContentConfig{
		Temperature:      float32Ptr(0.3),
		MaxOutputTokens:  8192,
		ResponseMIMEType: "application/json",
	}

	resp, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(prompt), genCfg)
	if err != nil {
		return nil, fmt.Errorf("error al generar contenido con Gemini: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("ningún contenido generado por la IA")
	}

	var result models.RefineResponse
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &result); err != nil {
		return nil, domainerrors.NewResponseFormatError(text, err)
	}

	if resp.UsageMetadata != nil {
		result.Meta = &models.RefineMeta{
			ItemsProcessed: len(result.Items),
			TokensUsed:     int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return &result, nil
}

func buildPrompt(items []string, opts models.RefineOptions) string {
	var sb strings.Builder

	sb.WriteString("You are a senior product owner. Refine each of the following raw backlog items.\n")
	sb.WriteString("Respond only with JSON of the form {\"items\": [...]} where every element has:\n")
	sb.WriteString("title, problem, acceptanceCriteria (string array), estimate (t-shirt size), priority, rationale, tags (string array)")
	if opts.UseUserStories {
		sb.WriteString(", userStory (As a..., I want..., so that...)")
	}
	sb.WriteString(".\n")
	if opts.UseGherkin {
		sb.WriteString("Write every acceptance criterion in Gherkin style (Given/When/Then).\n")
	}
	if opts.Context != "" {
		sb.WriteString("\nProject context:\n")
		sb.WriteString(opts.Context)
		sb.WriteString("\n")
	}

	sb.WriteString("\nRaw items:\n")
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
	}

	return sb.String()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}
	return sb.String()
}

func float32Ptr(f float32) *float32 {
	return &f
}
