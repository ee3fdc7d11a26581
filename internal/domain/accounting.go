package domain

type Invoice struct {
	ID                 int           `json:"id"`
	InvoiceNumber      string        `json:"invoice_number"`
	ClientID           int           `json:"client_id"`
	ProjectID          *int          `json:"project_id"`
	Status             InvoiceStatus `json:"status"`
	IssueDate          string        `json:"issue_date"`
	DueDate            string        `json:"due_date"`
	Subtotal           float64       `json:"subtotal"`
	TaxRate            float64       `json:"tax_rate"`
	TaxAmount          float64       `json:"tax_amount"`
	DiscountPercentage float64       `json:"discount_percentage"`
	DiscountAmount     float64       `json:"discount_amount"`
	TotalAmount        float64       `json:"total_amount"`
	AmountPaid         float64       `json:"amount_paid"`
	BalanceDue         float64       `json:"balance_due"`
	Currency           string        `json:"currency"`
	Notes              string        `json:"notes"`
	Terms              string        `json:"terms"`
	PaymentTerms       int           `json:"payment_terms"`
	SentAt             string        `json:"sent_at"`
	ViewedAt           string        `json:"viewed_at"`
	CreatedAt          string        `json:"created_at"`
	Items              []InvoiceItem `json:"items,omitempty"`
}

type InvoiceItem struct {
	ID          int     `json:"id"`
	InvoiceID   int     `json:"invoice_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

type Payment struct {
	ID            int     `json:"id"`
	InvoiceID     int     `json:"invoice_id"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	Reference     string  `json:"reference"`
	Notes         string  `json:"notes"`
	CreatedAt     string  `json:"created_at"`
}

type Expense struct {
	ID             int           `json:"id"`
	ExpenseNumber  string        `json:"expense_number"`
	ProjectID      *int          `json:"project_id"`
	EmployeeID     *int          `json:"employee_id"`
	Category       string        `json:"category"`
	Description    string        `json:"description"`
	Amount         float64       `json:"amount"`
	Currency       string        `json:"currency"`
	ExpenseDate    string        `json:"expense_date"`
	VendorName     string        `json:"vendor_name"`
	Status         ExpenseStatus `json:"status"`
	IsReimbursable bool          `json:"is_reimbursable"`
	ApprovedByID   *int          `json:"approved_by_id"`
	ApprovedAt     string        `json:"approved_at"`
	ReimbursedAt   string        `json:"reimbursed_at"`
	SubmittedByID  *int          `json:"submitted_by_id"`
	CreatedAt      string        `json:"created_at"`
}

type Budget struct {
	ID            int     `json:"id"`
	ProjectID     int     `json:"project_id"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	PlannedAmount float64 `json:"planned_amount"`
	ActualAmount  float64 `json:"actual_amount"`
	CreatedAt     string  `json:"created_at"`
}
