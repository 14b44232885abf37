package models

// RefinedItem es un item de backlog ya refinado por el servicio.
// Los campos opcionales vienen vacíos cuando el servicio no los genera.
type RefinedItem struct {
	Title              string   `json:"title"`
	Problem            string   `json:"problem"`
	AcceptanceCriteria []string `json:"acceptanceCriteria,omitempty"`
	Estimate           string   `json:"estimate,omitempty"`
	Priority           string   `json:"priority,omitempty"`
	Rationale          string   `json:"rationale,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	UserStory          string   `json:"userStory,omitempty"`
}

// RefineMeta es metadata opcional que el servicio adjunta a la respuesta
type RefineMeta struct {
	Tier           string `json:"tier,omitempty"`
	ItemsProcessed int    `json:"itemsProcessed,omitempty"`
	TokensUsed     int    `json:"tokensUsed,omitempty"`
}

// RefineResponse es la respuesta completa del servicio de refinamiento
type RefineResponse struct {
	Items []RefinedItem `json:"items"`
	Meta  *RefineMeta   `json:"_meta,omitempty"`
}

// RefineOptions son las opciones que acompañan a los items en cada request
type RefineOptions struct {
	Context        string
	UseUserStories bool
	UseGherkin     bool
	LicenseKey     string
}
