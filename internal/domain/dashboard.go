package domain

// DashboardStats mirrors the aggregate counters the backend computes
// for the landing view.
type DashboardStats struct {
	Projects struct {
		Active    int `json:"active"`
		Completed int `json:"completed"`
	} `json:"projects"`
	Tasks struct {
		Total      int `json:"total"`
		InProgress int `json:"in_progress"`
		Completed  int `json:"completed"`
	} `json:"tasks"`
	CRM struct {
		ActiveClients int     `json:"active_clients"`
		NewLeads      int     `json:"new_leads"`
		OpenDeals     int     `json:"open_deals"`
		PipelineValue float64 `json:"pipeline_value"`
	} `json:"crm"`
	Finance struct {
		PendingInvoices int     `json:"pending_invoices"`
		PendingAmount   float64 `json:"pending_amount"`
		OverdueInvoices int     `json:"overdue_invoices"`
	} `json:"finance"`
	Equipment struct {
		Available int `json:"available"`
		InUse     int `json:"in_use"`
	} `json:"equipment"`
	HR struct {
		TotalEmployees       int `json:"total_employees"`
		PendingLeaveRequests int `json:"pending_leave_requests"`
	} `json:"hr"`
	Production struct {
		UpcomingShoots int `json:"upcoming_shoots"`
	} `json:"production"`
}

type ProjectSummary struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Code   string        `json:"code"`
	Status ProjectStatus `json:"status"`
}

type TaskSummary struct {
	ID      int        `json:"id"`
	Title   string     `json:"title"`
	TaskKey string     `json:"task_key"`
	Status  TaskStatus `json:"status"`
}

type LeadSummary struct {
	ID     int        `json:"id"`
	Title  string     `json:"title"`
	Status LeadStatus `json:"status"`
}

type RecentActivity struct {
	RecentProjects []ProjectSummary `json:"recent_projects"`
	RecentTasks    []TaskSummary    `json:"recent_tasks"`
	RecentLeads    []LeadSummary    `json:"recent_leads"`
}

// MyTask is the trimmed task shape the my-tasks endpoint returns.
type MyTask struct {
	ID       int          `json:"id"`
	Title    string       `json:"title"`
	TaskKey  string       `json:"task_key"`
	Status   TaskStatus   `json:"status"`
	Priority TaskPriority `json:"priority"`
	DueDate  string       `json:"due_date"`
}
