package domain

type Location struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	LocationType      string   `json:"location_type"`
	AddressLine1      string   `json:"address_line1"`
	AddressLine2      string   `json:"address_line2"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Country           string   `json:"country"`
	PostalCode        string   `json:"postal_code"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	ContactName       string   `json:"contact_name"`
	ContactPhone      string   `json:"contact_phone"`
	ContactEmail      string   `json:"contact_email"`
	HasPower          bool     `json:"has_power"`
	HasParking        bool     `json:"has_parking"`
	HasBathroom       bool     `json:"has_bathroom"`
	HasWifi           bool     `json:"has_wifi"`
	MaxCrewSize       *int     `json:"max_crew_size"`
	RentalRate        *float64 `json:"rental_rate"`
	RentalTerms       string   `json:"rental_terms"`
	PermitRequired    bool     `json:"permit_required"`
	PermitNotes       string   `json:"permit_notes"`
	InsuranceRequired bool     `json:"insurance_required"`
	Notes             string   `json:"notes"`
	CreatedAt         string   `json:"created_at"`
}

type ProductionSchedule struct {
	ID                  int            `json:"id"`
	ProjectID           int            `json:"project_id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	ShootType           ShootType      `json:"shoot_type"`
	Status              ScheduleStatus `json:"status"`
	LocationID          *int           `json:"location_id"`
	LocationNotes       string         `json:"location_notes"`
	Date                string         `json:"date"`
	CallTime            string         `json:"call_time"`
	StartTime           string         `json:"start_time"`
	EndTime             string         `json:"end_time"`
	WrapTime            string         `json:"wrap_time"`
	WeatherBackupDate   string         `json:"weather_backup_date"`
	Scenes              string         `json:"scenes"`
	ShotCount           *int           `json:"shot_count"`
	GeneralNotes        string         `json:"general_notes"`
	ParkingInfo         string         `json:"parking_info"`
	CateringInfo        string         `json:"catering_info"`
	NearestHospital     string         `json:"nearest_hospital"`
	ProductionManagerID *int           `json:"production_manager_id"`
	CreatedAt           string         `json:"created_at"`
}

type CrewAssignment struct {
	ID            int      `json:"id"`
	ScheduleID    int      `json:"schedule_id"`
	EmployeeID    *int     `json:"employee_id"`
	ExternalName  string   `json:"external_name"`
	ExternalEmail string   `json:"external_email"`
	ExternalPhone string   `json:"external_phone"`
	Role          string   `json:"role"`
	CallTime      string   `json:"call_time"`
	DayRate       *float64 `json:"day_rate"`
	IsConfirmed   bool     `json:"is_confirmed"`
	Notes         string   `json:"notes"`
	CreatedAt     string   `json:"created_at"`
}
