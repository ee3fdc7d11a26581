package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/slatehq/slate/internal/domain"
)

// EquipmentClient covers the gear inventory and its bookings.
type EquipmentClient struct {
	c *Client
}

func NewEquipmentClient(c *Client) *EquipmentClient {
	return &EquipmentClient{c: c}
}

type EquipmentFilter struct {
	Category    string
	Status      string
	IsAvailable *bool
}

func (f EquipmentFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "category", f.Category)
	setString(v, "status", f.Status)
	setBool(v, "is_available", f.IsAvailable)
	return v
}

type CreateEquipmentRequest struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Code          string   `json:"code,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	Model         string   `json:"model,omitempty"`
	SerialNumber  string   `json:"serial_number,omitempty"`
	Description   string   `json:"description,omitempty"`
	PurchaseDate  string   `json:"purchase_date,omitempty"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	DailyRate     *float64 `json:"daily_rate,omitempty"`
	IsRentable    bool     `json:"is_rentable,omitempty"`
}

type UpdateEquipmentRequest struct {
	Name            *string  `json:"name,omitempty"`
	Status          *string  `json:"status,omitempty"`
	ConditionNotes  *string  `json:"condition_notes,omitempty"`
	CurrentLocation *string  `json:"current_location,omitempty"`
	CurrentValue    *float64 `json:"current_value,omitempty"`
	DailyRate       *float64 `json:"daily_rate,omitempty"`
	IsRentable      *bool    `json:"is_rentable,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

func (e *EquipmentClient) List(ctx context.Context, f EquipmentFilter) ([]domain.Equipment, error) {
	var out []domain.Equipment
	if err := e.c.Get(ctx, "/equipment", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *EquipmentClient) Get(ctx context.Context, id int) (*domain.Equipment, error) {
	var out domain.Equipment
	if err := e.c.Get(ctx, fmt.Sprintf("/equipment/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EquipmentClient) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	var out domain.Equipment
	if err := e.c.Post(ctx, "/equipment", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EquipmentClient) Update(ctx context.Context, id int, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	var out domain.Equipment
	if err := e.c.Put(ctx, fmt.Sprintf("/equipment/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EquipmentClient) Delete(ctx context.Context, id int) error {
	return e.c.Delete(ctx, fmt.Sprintf("/equipment/%d", id))
}

// Bookings

type BookingFilter struct {
	Status      string
	EquipmentID *int
}

func (f BookingFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "status", f.Status)
	setInt(v, "equipment_id", f.EquipmentID)
	return v
}

type CreateBookingRequest struct {
	EquipmentID int    `json:"equipment_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	ProjectID   *int   `json:"project_id,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type UpdateBookingRequest struct {
	Status    *string `json:"status,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (e *EquipmentClient) ListBookings(ctx context.Context, f BookingFilter) ([]domain.EquipmentBooking, error) {
	var out []domain.EquipmentBooking
	if err := e.c.Get(ctx, "/equipment/bookings/all", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *EquipmentClient) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.EquipmentBooking, error) {
	var out domain.EquipmentBooking
	if err := e.c.Post(ctx, "/equipment/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EquipmentClient) UpdateBooking(ctx context.Context, id int, req UpdateBookingRequest) (*domain.EquipmentBooking, error) {
	var out domain.EquipmentBooking
	if err := e.c.Put(ctx, fmt.Sprintf("/equipment/bookings/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
