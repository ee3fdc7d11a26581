package domain

type Client struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	Code             string     `json:"code"`
	ClientType       ClientType `json:"client_type"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Website          string     `json:"website"`
	City             string     `json:"city"`
	Country          string     `json:"country"`
	Industry         string     `json:"industry"`
	AccountManagerID *int       `json:"account_manager_id"`
	PaymentTerms     int        `json:"payment_terms"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        string     `json:"created_at"`
}

type Lead struct {
	ID                  int        `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Source              LeadSource `json:"source"`
	Status              LeadStatus `json:"status"`
	ContactID           *int       `json:"contact_id"`
	ContactName         string     `json:"contact_name"`
	ContactEmail        string     `json:"contact_email"`
	CompanyName         string     `json:"company_name"`
	EstimatedValue      *float64   `json:"estimated_value"`
	Probability         float64    `json:"probability"`
	AssignedToID        *int       `json:"assigned_to_id"`
	ProjectTypeInterest string     `json:"project_type_interest"`
	NextFollowUp        string     `json:"next_follow_up"`
	ConvertedToDealID   *int       `json:"converted_to_deal_id"`
	ConvertedAt         string     `json:"converted_at"`
	CreatedAt           string     `json:"created_at"`
}

type Deal struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	ClientID          int       `json:"client_id"`
	ContactID         *int      `json:"contact_id"`
	Stage             DealStage `json:"stage"`
	Amount            float64   `json:"amount"`
	Probability       float64   `json:"probability"`
	ExpectedRevenue   float64   `json:"expected_revenue"`
	ExpectedCloseDate string    `json:"expected_close_date"`
	ActualCloseDate   string    `json:"actual_close_date"`
	OwnerID           *int      `json:"owner_id"`
	ProjectID         *int      `json:"project_id"`
	CreatedAt         string    `json:"created_at"`
}

type Contact struct {
	ID        int    `json:"id"`
	ClientID  *int   `json:"client_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	JobTitle  string `json:"job_title"`
	IsPrimary bool   `json:"is_primary"`
	CreatedAt string `json:"created_at"`
}
