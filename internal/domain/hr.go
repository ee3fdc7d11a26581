package domain

type Department struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	ManagerID   *int    `json:"manager_id"`
	Budget      float64 `json:"budget"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
}

type Employee struct {
	ID                 int            `json:"id"`
	UserID             int            `json:"user_id"`
	EmployeeCode       string         `json:"employee_code"`
	DepartmentID       *int           `json:"department_id"`
	JobTitle           string         `json:"job_title"`
	EmploymentType     EmploymentType `json:"employment_type"`
	HireDate           string         `json:"hire_date"`
	DateOfBirth        string         `json:"date_of_birth"`
	Address            string         `json:"address"`
	Salary             *float64       `json:"salary"`
	Skills             string         `json:"skills"`
	AnnualLeaveBalance float64        `json:"annual_leave_balance"`
	SickLeaveBalance   float64        `json:"sick_leave_balance"`
	IsActive           bool           `json:"is_active"`
	CreatedAt          string         `json:"created_at"`
}

type LeaveRequest struct {
	ID              int         `json:"id"`
	EmployeeID      int         `json:"employee_id"`
	LeaveType       LeaveType   `json:"leave_type"`
	StartDate       string      `json:"start_date"`
	EndDate         string      `json:"end_date"`
	TotalDays       int         `json:"total_days"`
	Reason          string      `json:"reason"`
	Status          LeaveStatus `json:"status"`
	ApprovedByID    *int        `json:"approved_by_id"`
	ApprovedAt      string      `json:"approved_at"`
	RejectionReason string      `json:"rejection_reason"`
	CreatedAt       string      `json:"created_at"`
}
