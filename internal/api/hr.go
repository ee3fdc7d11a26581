package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/slatehq/slate/internal/domain"
)

// HRClient covers departments, employees and leave requests.
type HRClient struct {
	c *Client
}

func NewHRClient(c *Client) *HRClient {
	return &HRClient{c: c}
}

// Departments

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code,omitempty"`
	Description string  `json:"description,omitempty"`
	ManagerID   *int    `json:"manager_id,omitempty"`
	Budget      float64 `json:"budget,omitempty"`
}

type UpdateDepartmentRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	ManagerID   *int     `json:"manager_id,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

func (h *HRClient) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	var out []domain.Department
	if err := h.c.Get(ctx, "/hr/departments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *HRClient) CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*domain.Department, error) {
	var out domain.Department
	if err := h.c.Post(ctx, "/hr/departments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *HRClient) UpdateDepartment(ctx context.Context, id int, req UpdateDepartmentRequest) (*domain.Department, error) {
	var out domain.Department
	if err := h.c.Put(ctx, fmt.Sprintf("/hr/departments/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Employees

type EmployeeFilter struct {
	DepartmentID *int
}

func (f EmployeeFilter) Values() url.Values {
	v := url.Values{}
	setInt(v, "department_id", f.DepartmentID)
	return v
}

type CreateEmployeeRequest struct {
	UserID         int      `json:"user_id"`
	EmployeeCode   string   `json:"employee_code,omitempty"`
	DepartmentID   *int     `json:"department_id,omitempty"`
	JobTitle       string   `json:"job_title,omitempty"`
	EmploymentType string   `json:"employment_type,omitempty"`
	HireDate       string   `json:"hire_date,omitempty"`
	Salary         *float64 `json:"salary,omitempty"`
	Skills         string   `json:"skills,omitempty"`
}

type UpdateEmployeeRequest struct {
	DepartmentID   *int     `json:"department_id,omitempty"`
	JobTitle       *string  `json:"job_title,omitempty"`
	EmploymentType *string  `json:"employment_type,omitempty"`
	Salary         *float64 `json:"salary,omitempty"`
	Skills         *string  `json:"skills,omitempty"`
	IsActive       *bool    `json:"is_active,omitempty"`
}

func (h *HRClient) ListEmployees(ctx context.Context, f EmployeeFilter) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := h.c.Get(ctx, "/hr/employees", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *HRClient) GetEmployee(ctx context.Context, id int) (*domain.Employee, error) {
	var out domain.Employee
	if err := h.c.Get(ctx, fmt.Sprintf("/hr/employees/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *HRClient) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*domain.Employee, error) {
	var out domain.Employee
	if err := h.c.Post(ctx, "/hr/employees", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *HRClient) UpdateEmployee(ctx context.Context, id int, req UpdateEmployeeRequest) (*domain.Employee, error) {
	var out domain.Employee
	if err := h.c.Put(ctx, fmt.Sprintf("/hr/employees/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leave requests

type LeaveRequestFilter struct {
	Status     string
	EmployeeID *int
}

func (f LeaveRequestFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "status", f.Status)
	setInt(v, "employee_id", f.EmployeeID)
	return v
}

type CreateLeaveRequestRequest struct {
	EmployeeID int    `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	TotalDays  int    `json:"total_days,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type UpdateLeaveRequestRequest struct {
	Status          *string `json:"status,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (h *HRClient) ListLeaveRequests(ctx context.Context, f LeaveRequestFilter) ([]domain.LeaveRequest, error) {
	var out []domain.LeaveRequest
	if err := h.c.Get(ctx, "/hr/leave-requests", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *HRClient) CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (*domain.LeaveRequest, error) {
	var out domain.LeaveRequest
	if err := h.c.Post(ctx, "/hr/leave-requests", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *HRClient) UpdateLeaveRequest(ctx context.Context, id int, req UpdateLeaveRequestRequest) (*domain.LeaveRequest, error) {
	var out domain.LeaveRequest
	if err := h.c.Put(ctx, fmt.Sprintf("/hr/leave-requests/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
