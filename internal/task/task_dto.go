package task

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

type ClaimTaskRequest struct {
	EstimateMinutes int `json:"estimate_minutes" binding:"required,min=1,max=100000"`
}

type TaskResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	CreatedBy       string  `json:"created_by"`
	AssignedTo      *string `json:"assigned_to"`
	Status          string  `json:"status"`
	EstimateMinutes *int    `json:"estimate_minutes"`
	ActiveMinutes   int     `json:"active_minutes"`
	Rating          *int    `json:"rating"`
	ClaimedAt       *string `json:"claimed_at"`
	StartedAt       *string `json:"started_at"`
	PausedAt        *string `json:"paused_at"`
	CompletedAt     *string `json:"completed_at"`
	CreatedAt       string  `json:"created_at"`
}
