package ports

import (
	"context"

	"github.com/Tomas-vilte/MateBacklog/internal/domain/models"
)

// Refiner convierte items crudos de backlog en items refinados.
// Lo implementan el cliente de la API hosteada y el proveedor Gemini directo.
type Refiner interface {
	Refine(ctx context.Context, items []string, opts models.RefineOptions) (*models.RefineResponse, error)
}
