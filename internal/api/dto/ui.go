package dto

// UIConfigResponse carries the settings the browser UI reads at load.
type UIConfigResponse struct {
	SummaryLabel string `json:"summary_label" example:"要約"`
}
