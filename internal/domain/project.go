package domain

type Project struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	Code               string        `json:"code"`
	Description        string        `json:"description"`
	ProjectType        ProjectType   `json:"project_type"`
	Status             ProjectStatus `json:"status"`
	ClientID           *int          `json:"client_id"`
	ProjectManagerID   *int          `json:"project_manager_id"`
	DirectorID         *int          `json:"director_id"`
	ProducerID         *int          `json:"producer_id"`
	StartDate          string        `json:"start_date"`
	TargetEndDate      string        `json:"target_end_date"`
	ActualEndDate      string        `json:"actual_end_date"`
	EstimatedBudget    float64       `json:"estimated_budget"`
	ActualBudget       float64       `json:"actual_budget"`
	VideoFormat        string        `json:"video_format"`
	AspectRatio        string        `json:"aspect_ratio"`
	DurationMinutes    *int          `json:"duration_minutes"`
	ProgressPercentage float64       `json:"progress_percentage"`
	IsArchived         bool          `json:"is_archived"`
	CreatedAt          string        `json:"created_at"`
}

type Task struct {
	ID             int          `json:"id"`
	ProjectID      int          `json:"project_id"`
	SprintID       *int         `json:"sprint_id"`
	ParentTaskID   *int         `json:"parent_task_id"`
	TaskKey        string       `json:"task_key"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	TaskType       TaskType     `json:"task_type"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	AssigneeID     *int         `json:"assignee_id"`
	CreatedByID    int          `json:"created_by_id"`
	EstimatedHours *float64     `json:"estimated_hours"`
	LoggedHours    float64      `json:"logged_hours"`
	DueDate        string       `json:"due_date"`
	StartedAt      string       `json:"started_at"`
	CompletedAt    string       `json:"completed_at"`
	Stage          string       `json:"stage"`
	SceneNumber    string       `json:"scene_number"`
	Position       int          `json:"position"`
	Labels         string       `json:"labels"`
	CreatedAt      string       `json:"created_at"`
}

type Sprint struct {
	ID          int    `json:"id"`
	ProjectID   int    `json:"project_id"`
	Name        string `json:"name"`
	Goal        string `json:"goal"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsActive    bool   `json:"is_active"`
	IsCompleted bool   `json:"is_completed"`
	CreatedAt   string `json:"created_at"`
}
