package github

import (
	"context"
	"fmt"
	"net/http"

	domainerrors "github.com/Tomas-vilte/MateBacklog/internal/domain/errors"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/models"
	"github.com/Tomas-vilte/MateBacklog/internal/domain/ports"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.IssueFetcher = (*GitHubClient)(nil)

// IssuesService es la porción de la API de issues de go-github que usamos.
// Se inyecta en los tests.
type IssuesService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.Issue, *github.Response, error)
}

// GitHubClient trae issues de un repositorio de GitHub.
// Sin token el acceso es anónimo, solo repos públicos.
type GitHubClient struct {
	issuesService IssuesService
	owner         string
	repo          string
}

// NewGitHubClient crea un cliente para el repositorio owner/repo
func NewGitHubClient(owner, repo, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		issuesService: client.Issues,
		owner:         owner,
		repo:          repo,
	}
}

// NewGitHubClientWithServices permite inyectar el servicio de issues en los tests
func NewGitHubClientWithServices(issuesService IssuesService, owner, repo string) *GitHubClient {
	return &GitHubClient{
		issuesService: issuesService,
		owner:         owner,
		repo:          repo,
	}
}

// FetchIssue trae título, body y labels del issue indicado
func (ghc *GitHubClient) FetchIssue(ctx context.Context, number int) (*models.IssueRecord, error) {
	issue, resp, err := ghc.issuesService.Get(ctx, ghc.owner, ghc.repo, number)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, domainerrors.NewIssueNotFoundError(number, ghc.owner+"/"+ghc.repo)
		}
		return nil, fmt.Errorf("error al obtener el issue %d de GitHub: %w", number, err)
	}

	if issue == nil {
		return nil, domainerrors.NewIssueNotFoundError(number, ghc.owner+"/"+ghc.repo)
	}

	record := &models.IssueRecord{
		Number: number,
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
	}

	for _, label := range issue.Labels {
		if label != nil && label.Name != nil {
			record.Labels = append(record.Labels, *label.Name)
		}
	}

	return record, nil
}
