package domain

type Equipment struct {
	ID                  int               `json:"id"`
	Name                string            `json:"name"`
	Code                string            `json:"code"`
	Category            EquipmentCategory `json:"category"`
	Brand               string            `json:"brand"`
	Model               string            `json:"model"`
	SerialNumber        string            `json:"serial_number"`
	Description         string            `json:"description"`
	Status              EquipmentStatus   `json:"status"`
	ConditionNotes      string            `json:"condition_notes"`
	PurchaseDate        string            `json:"purchase_date"`
	PurchasePrice       *float64          `json:"purchase_price"`
	CurrentValue        *float64          `json:"current_value"`
	StorageLocation     string            `json:"storage_location"`
	CurrentLocation     string            `json:"current_location"`
	IsRentable          bool              `json:"is_rentable"`
	DailyRate           *float64          `json:"daily_rate"`
	WeeklyRate          *float64          `json:"weekly_rate"`
	LastMaintenanceDate string            `json:"last_maintenance_date"`
	NextMaintenanceDate string            `json:"next_maintenance_date"`
	ImageURL            string            `json:"image_url"`
	IsActive            bool              `json:"is_active"`
	CreatedAt           string            `json:"created_at"`
}

type EquipmentBooking struct {
	ID          int           `json:"id"`
	EquipmentID int           `json:"equipment_id"`
	ProjectID   *int          `json:"project_id"`
	BookedByID  int           `json:"booked_by_id"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Status      BookingStatus `json:"status"`
	Purpose     string        `json:"purpose"`
	Notes       string        `json:"notes"`
	CreatedAt   string        `json:"created_at"`
}
