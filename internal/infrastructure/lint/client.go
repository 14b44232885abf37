package lint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	domainerrors "github.com/Tomas-vilte/MateBacklog/internal/domain/errors"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/models"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/ports"
	"github.com/Tomas-vilte/MateBacklog/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/MateBacklog/internal/version"
)

var _ ports.IssueLinter = (*Client)(nil)

// Client habla con el servicio de puntuación de issues
type Client struct {
	baseURL string
	client  httpclient.HTTPClient
}

// NewClient crea un nuevo cliente del servicio de puntuación
func NewClient(baseURL string, client httpclient.HTTPClient) *Client {
	return &Client{
		baseURL: baseURL,
		client:  client,
	}
}

type lintIssue struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

type lintRequest struct {
	Issues            []lintIssue `json:"issues"`
	PreserveStructure bool        `json:"preserve_structure"`
}

// resultPayload es la forma cruda de un resultado del upstream.
// Todos los campos son opcionales: el contrato del servicio todavía
// no está estabilizado, así que los ausentes quedan en cero.
type resultPayload struct {
	LintID     string                        `json:"lint_id"`
	Score      int                           `json:"completeness_score"`
	AgentReady bool                          `json:"agent_ready"`
	Checks     map[string]models.CheckResult `json:"checks"`
}

// lintEnvelope acepta las dos formas que devuelve el servicio:
// un objeto plano o un wrapper {issues: [...]}. Se normaliza acá,
// en el borde, para que el resto del programa vea un solo tipo.
type lintEnvelope struct {
	Issues []resultPayload `json:"issues"`
	resultPayload
}

func (e *lintEnvelope) normalize() *models.LintResult {
	payload := e.resultPayload
	if len(e.Issues) > 0 {
		payload = e.Issues[0]
	}

	return &models.LintResult{
		LintID:     payload.LintID,
		Score:      payload.Score,
		AgentReady: payload.AgentReady,
		Checks:     payload.Checks,
	}
}

// LintIssue manda el issue al endpoint de puntuación preservando su
// estructura original y devuelve el resultado ya normalizado
func (c *Client) LintIssue(ctx context.Context, issue *models.IssueRecord, licenseKey string) (*models.LintResult, error) {
	payload := lintRequest{
		Issues: []lintIssue{{
			Title:  issue.Title,
			Body:   issue.Body,
			Labels: issue.Labels,
		}},
		PreserveStructure: true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error al serializar el request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/lint", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error al armar el request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.ContentLength = int64(len(body))
	if licenseKey != "" {
		req.Header.Set("X-License-Key", licenseKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error al llamar al servicio de puntuación: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error al leer la respuesta: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, domainerrors.NewAPIError(resp.StatusCode, string(raw))
	}

	var envelope lintEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, domainerrors.NewResponseFormatError(string(raw), err)
	}

	return envelope.normalize(), nil
}
