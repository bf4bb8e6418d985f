package dto

type CreateDashboardRequest struct {
	Name        string `json:"name" binding:"required"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

type UpdateDashboardRequest struct {
	Name        *string `json:"name"`
	Company     *string `json:"company"`
	Description *string `json:"description"`
}
