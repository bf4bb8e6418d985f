package dto

type CreateTaskRequest struct {
	DashboardID     string `json:"dashboardid"`
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	StartDate       string `json:"startdate"`
	EndDate         string `json:"enddate"`
	DateCompleted   string `json:"datecompleted"`
	DurationMinutes int    `json:"durationminutes" binding:"min=0"`
	Difficulty      string `json:"difficulty" binding:"required,oneof=Low Medium High"`
	Status          string `json:"status" binding:"omitempty,oneof='Not Started' 'In Progress' Completed"`
	SkillsAcquired  string `json:"skillsacquired"`
	KeyChallenges   string `json:"keychallenges"`
	KeyTakeaways    string `json:"keytakeaways"`
}

type UpdateTaskRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	StartDate       *string `json:"startdate"`
	EndDate         *string `json:"enddate"`
	DateCompleted   *string `json:"datecompleted"`
	DurationMinutes *int    `json:"durationminutes" binding:"omitempty,min=0"`
	Difficulty      *string `json:"difficulty" binding:"omitempty,oneof=Low Medium High"`
	Status          *string `json:"status" binding:"omitempty,oneof='Not Started' 'In Progress' Completed"`
	SkillsAcquired  *string `json:"skillsacquired"`
	KeyChallenges   *string `json:"keychallenges"`
	KeyTakeaways    *string `json:"keytakeaways"`
}

type ListTasksRequest struct {
	Search     string `form:"search"`
	Difficulty string `form:"difficulty" binding:"omitempty,oneof=Low Medium High"`
}
