package dto

type CreateApplicationRequest struct {
	DashboardID string `json:"dashboardid"`
	Company     string `json:"company" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=Applied Interviewing Offer Rejected"`
	AppliedDate string `json:"applieddate"`
	PostingURL  string `json:"postingurl"`
	Notes       string `json:"notes"`
}

type UpdateApplicationRequest struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	Status      *string `json:"status" binding:"omitempty,oneof=Applied Interviewing Offer Rejected"`
	AppliedDate *string `json:"applieddate"`
	PostingURL  *string `json:"postingurl"`
	Notes       *string `json:"notes"`
}
