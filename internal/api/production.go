package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/slatehq/slate/internal/domain"
)

// ProductionClient covers shoot schedules, locations and crew.
type ProductionClient struct {
	c *Client
}

func NewProductionClient(c *Client) *ProductionClient {
	return &ProductionClient{c: c}
}

// Locations

type LocationFilter struct {
	LocationType string
}

func (f LocationFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "location_type", f.LocationType)
	return v
}

type CreateLocationRequest struct {
	Name         string   `json:"name"`
	LocationType string   `json:"location_type,omitempty"`
	AddressLine1 string   `json:"address_line1,omitempty"`
	City         string   `json:"city,omitempty"`
	Country      string   `json:"country,omitempty"`
	ContactName  string   `json:"contact_name,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty"`
	RentalRate   *float64 `json:"rental_rate,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

type UpdateLocationRequest struct {
	Name         *string  `json:"name,omitempty"`
	LocationType *string  `json:"location_type,omitempty"`
	AddressLine1 *string  `json:"address_line1,omitempty"`
	City         *string  `json:"city,omitempty"`
	ContactName  *string  `json:"contact_name,omitempty"`
	ContactPhone *string  `json:"contact_phone,omitempty"`
	RentalRate   *float64 `json:"rental_rate,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

func (p *ProductionClient) ListLocations(ctx context.Context, f LocationFilter) ([]domain.Location, error) {
	var out []domain.Location
	if err := p.c.Get(ctx, "/production/locations", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProductionClient) CreateLocation(ctx context.Context, req CreateLocationRequest) (*domain.Location, error) {
	var out domain.Location
	if err := p.c.Post(ctx, "/production/locations", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProductionClient) UpdateLocation(ctx context.Context, id int, req UpdateLocationRequest) (*domain.Location, error) {
	var out domain.Location
	if err := p.c.Put(ctx, fmt.Sprintf("/production/locations/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Schedules

type ScheduleFilter struct {
	ProjectID *int
	Status    string
}

func (f ScheduleFilter) Values() url.Values {
	v := url.Values{}
	setInt(v, "project_id", f.ProjectID)
	setString(v, "status", f.Status)
	return v
}

type CreateScheduleRequest struct {
	ProjectID     int    `json:"project_id"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	ShootType     string `json:"shoot_type,omitempty"`
	LocationID    *int   `json:"location_id,omitempty"`
	LocationNotes string `json:"location_notes,omitempty"`
	CallTime      string `json:"call_time,omitempty"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	Description   string `json:"description,omitempty"`
}

type UpdateScheduleRequest struct {
	Title         *string `json:"title,omitempty"`
	Status        *string `json:"status,omitempty"`
	Date          *string `json:"date,omitempty"`
	LocationID    *int    `json:"location_id,omitempty"`
	LocationNotes *string `json:"location_notes,omitempty"`
	CallTime      *string `json:"call_time,omitempty"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	WrapTime      *string `json:"wrap_time,omitempty"`
	GeneralNotes  *string `json:"general_notes,omitempty"`
}

func (p *ProductionClient) ListSchedules(ctx context.Context, f ScheduleFilter) ([]domain.ProductionSchedule, error) {
	var out []domain.ProductionSchedule
	if err := p.c.Get(ctx, "/production/schedules", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProductionClient) GetSchedule(ctx context.Context, id int) (*domain.ProductionSchedule, error) {
	var out domain.ProductionSchedule
	if err := p.c.Get(ctx, fmt.Sprintf("/production/schedules/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProductionClient) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*domain.ProductionSchedule, error) {
	var out domain.ProductionSchedule
	if err := p.c.Post(ctx, "/production/schedules", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProductionClient) UpdateSchedule(ctx context.Context, id int, req UpdateScheduleRequest) (*domain.ProductionSchedule, error) {
	var out domain.ProductionSchedule
	if err := p.c.Put(ctx, fmt.Sprintf("/production/schedules/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Crew

type CreateCrewAssignmentRequest struct {
	ScheduleID   int      `json:"schedule_id"`
	Role         string   `json:"role"`
	EmployeeID   *int     `json:"employee_id,omitempty"`
	ExternalName string   `json:"external_name,omitempty"`
	CallTime     string   `json:"call_time,omitempty"`
	DayRate      *float64 `json:"day_rate,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

func (p *ProductionClient) ListCrew(ctx context.Context, scheduleID int) ([]domain.CrewAssignment, error) {
	var out []domain.CrewAssignment
	if err := p.c.Get(ctx, fmt.Sprintf("/production/schedules/%d/crew", scheduleID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProductionClient) CreateCrewAssignment(ctx context.Context, req CreateCrewAssignmentRequest) (*domain.CrewAssignment, error) {
	var out domain.CrewAssignment
	if err := p.c.Post(ctx, "/production/crew", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
