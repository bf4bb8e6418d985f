package dto

type CreateGoalRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=tasks hours skills"`
	Period      string `json:"period" binding:"required,oneof=Daily Weekly Monthly"`
	TargetValue int    `json:"targetvalue" binding:"required,min=1"`
	StartDate   string `json:"startdate" binding:"required"`
	EndDate     string `json:"enddate" binding:"required"`
}

type UpdateGoalRequest struct {
	Title       *string `json:"title"`
	Category    *string `json:"category" binding:"omitempty,oneof=tasks hours skills"`
	Period      *string `json:"period" binding:"omitempty,oneof=Daily Weekly Monthly"`
	TargetValue *int    `json:"targetvalue" binding:"omitempty,min=1"`
	StartDate   *string `json:"startdate"`
	EndDate     *string `json:"enddate"`
}

type GoalProgressResponse struct {
	GoalID          string  `json:"goal_id"`
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	Period          string  `json:"period"`
	TargetValue     int     `json:"target_value"`
	CurrentValue    int     `json:"current_value"`
	ProgressPercent float64 `json:"progress_percent"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
}
