package models

// IssueRecord son los datos de un issue traído del tracker externo.
// Se lee una sola vez y nunca se persiste.
type IssueRecord struct {
	Number int
	Title  string
	Body   string
	Labels []string
}

// CheckResult es el resultado de un chequeo individual del linter
type CheckResult struct {
	Pass    bool   `json:"pass"`
	Message string `json:"message,omitempty"`
}

// LintResult es el resultado normalizado del servicio de puntuación.
// Todos los campos del upstream son opcionales, los ausentes quedan en cero.
type LintResult struct {
	LintID     string                 `json:"lint_id,omitempty"`
	Score      int                    `json:"completeness_score"`
	AgentReady bool                   `json:"agent_ready"`
	Checks     map[string]CheckResult `json:"checks,omitempty"`
}

// FailingChecks retorna los nombres de los chequeos que no pasaron
func (r *LintResult) FailingChecks() []string {
	var failing []string
	for name, check := range r.Checks {
		if !check.Pass {
			failing = append(failing, name)
		}
	}
	return failing
}
