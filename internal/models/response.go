package models

// ErrorResponse represents error response format
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates an error response carrying per-field messages
func NewValidationErrorResponse(errs ValidationErrors) ErrorResponse {
	return ErrorResponse{
		Error:  "validation failed",
		Fields: errs,
	}
}

// CampaignView is everything the campaign page renders: the full list, the
// active filter, the list narrowed by it, and the aggregate stats.
type CampaignView struct {
	Campaigns    []Campaign    `json:"campaigns"`
	SelectedType TypeFilter    `json:"selectedType"`
	Filtered     []Campaign    `json:"filteredCampaigns"`
	Stats        CampaignStats `json:"stats"`
}

// NewCampaignView derives a view from the campaign list and the active filter
func NewCampaignView(campaigns []Campaign, selected TypeFilter) CampaignView {
	if campaigns == nil {
		campaigns = []Campaign{}
	}
	return CampaignView{
		Campaigns:    campaigns,
		SelectedType: selected,
		Filtered:     FilterCampaigns(campaigns, selected),
		Stats:        ComputeStats(campaigns),
	}
}
