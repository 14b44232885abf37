package refine

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

var _ ports.Refiner = (*Client)(nil)

// Client habla con la API hosteada de refinamiento.
// Hace exactamente un POST por invocación, sin reintentos.
type Client struct {
	baseURL string
	client  httpclient.HTTPClient
}

// NewClient crea un nuevo cliente del servicio de refinamiento
func NewClient(baseURL string, client httpclient.HTTPClient) *Client {
	return &Client{
		baseURL: baseURL,
		client:  client,
	}
}

type refineRequest struct {
	Items          []string `json:"items"`
	Context        string   `json:"context,omitempty"`
	UseUserStories bool     `json:"useUserStories,omitempty"`
	UseGherkin     bool     `json:"useGherkin,omitempty"`
}

// Refine manda los items al endpoint y mapea la respuesta HTTP a errores
// de dominio: 429 y 402 tienen errores propios, cualquier otro >=400 es un
// APIError genérico con el status y el body crudo.
func (c *Client) Refine(ctx context.Context, items []string, opts models.RefineOptions) (*models.RefineResponse, error) {
	payload := refineRequest{
		Items:          items,
		Context:        opts.Context,
		UseUserStories: opts.UseUserStories,
		UseGherkin:     opts.UseGherkin,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error al serializar el request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/refine", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error al armar el request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.ContentLength = int64(len(body))
	if opts.LicenseKey != "" {
		req.Header.Set("X-License-Key", opts.LicenseKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error al llamar al servicio de refinamiento: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error al leer la respuesta: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &domainerrors.RateLimitError{}
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, &domainerrors.PayloadTooLargeError{}
	case resp.StatusCode >= 400:
		return nil, domainerrors.NewAPIError(resp.StatusCode, string(raw))
	}

	var result models.RefineResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, domainerrors.NewResponseFormatError(string(raw), err)
	}

	return &result, nil
}
