package ports

import (
	"context"

	"github.com/Tomas-vilte/MateBacklog/internal/domain/models"
)

// IssueFetcher trae un issue del tracker externo
type IssueFetcher interface {
	FetchIssue(ctx context.Context, number int) (*models.IssueRecord, error)
}

// IssueLinter manda un issue al servicio de puntuación y
// devuelve el resultado ya normalizado
type IssueLinter interface {
	LintIssue(ctx context.Context, issue *models.IssueRecord, licenseKey string) (*models.LintResult, error)
}
