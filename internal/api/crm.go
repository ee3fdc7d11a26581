package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/slatehq/slate/internal/domain"
)

// CRMClient covers clients, leads, deals and contacts.
type CRMClient struct {
	c *Client
}

func NewCRMClient(c *Client) *CRMClient {
	return &CRMClient{c: c}
}

// Clients

type ClientFilter struct {
	IsActive *bool
}

func (f ClientFilter) Values() url.Values {
	v := url.Values{}
	setBool(v, "is_active", f.IsActive)
	return v
}

type CreateClientRequest struct {
	Name             string `json:"name"`
	Code             string `json:"code,omitempty"`
	ClientType       string `json:"client_type,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Website          string `json:"website,omitempty"`
	City             string `json:"city,omitempty"`
	Country          string `json:"country,omitempty"`
	Industry         string `json:"industry,omitempty"`
	AccountManagerID *int   `json:"account_manager_id,omitempty"`
	PaymentTerms     int    `json:"payment_terms,omitempty"`
}

type UpdateClientRequest struct {
	Name             *string `json:"name,omitempty"`
	ClientType       *string `json:"client_type,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Website          *string `json:"website,omitempty"`
	City             *string `json:"city,omitempty"`
	Country          *string `json:"country,omitempty"`
	Industry         *string `json:"industry,omitempty"`
	AccountManagerID *int    `json:"account_manager_id,omitempty"`
	PaymentTerms     *int    `json:"payment_terms,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

func (cl *CRMClient) ListClients(ctx context.Context, f ClientFilter) ([]domain.Client, error) {
	var out []domain.Client
	if err := cl.c.Get(ctx, "/crm/clients", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cl *CRMClient) GetClient(ctx context.Context, id int) (*domain.Client, error) {
	var out domain.Client
	if err := cl.c.Get(ctx, fmt.Sprintf("/crm/clients/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *CRMClient) CreateClient(ctx context.Context, req CreateClientRequest) (*domain.Client, error) {
	var out domain.Client
	if err := cl.c.Post(ctx, "/crm/clients", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *CRMClient) UpdateClient(ctx context.Context, id int, req UpdateClientRequest) (*domain.Client, error) {
	var out domain.Client
	if err := cl.c.Put(ctx, fmt.Sprintf("/crm/clients/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leads

type LeadFilter struct {
	Status       string
	AssignedToID *int
}

func (f LeadFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "status", f.Status)
	setInt(v, "assigned_to_id", f.AssignedToID)
	return v
}

type CreateLeadRequest struct {
	Title               string   `json:"title"`
	Description         string   `json:"description,omitempty"`
	Source              string   `json:"source,omitempty"`
	ContactName         string   `json:"contact_name,omitempty"`
	ContactEmail        string   `json:"contact_email,omitempty"`
	CompanyName         string   `json:"company_name,omitempty"`
	EstimatedValue      *float64 `json:"estimated_value,omitempty"`
	AssignedToID        *int     `json:"assigned_to_id,omitempty"`
	ProjectTypeInterest string   `json:"project_type_interest,omitempty"`
}

type UpdateLeadRequest struct {
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Status         *string  `json:"status,omitempty"`
	ContactName    *string  `json:"contact_name,omitempty"`
	ContactEmail   *string  `json:"contact_email,omitempty"`
	CompanyName    *string  `json:"company_name,omitempty"`
	EstimatedValue *float64 `json:"estimated_value,omitempty"`
	Probability    *float64 `json:"probability,omitempty"`
	AssignedToID   *int     `json:"assigned_to_id,omitempty"`
	NextFollowUp   *string  `json:"next_follow_up,omitempty"`
}

func (cl *CRMClient) ListLeads(ctx context.Context, f LeadFilter) ([]domain.Lead, error) {
	var out []domain.Lead
	if err := cl.c.Get(ctx, "/crm/leads", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cl *CRMClient) CreateLead(ctx context.Context, req CreateLeadRequest) (*domain.Lead, error) {
	var out domain.Lead
	if err := cl.c.Post(ctx, "/crm/leads", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *CRMClient) UpdateLead(ctx context.Context, id int, req UpdateLeadRequest) (*domain.Lead, error) {
	var out domain.Lead
	if err := cl.c.Put(ctx, fmt.Sprintf("/crm/leads/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Deals

type DealFilter struct {
	Stage    string
	ClientID *int
}

func (f DealFilter) Values() url.Values {
	v := url.Values{}
	setString(v, "stage", f.Stage)
	setInt(v, "client_id", f.ClientID)
	return v
}

type CreateDealRequest struct {
	Name              string  `json:"name"`
	ClientID          int     `json:"client_id"`
	Description       string  `json:"description,omitempty"`
	ContactID         *int    `json:"contact_id,omitempty"`
	Amount            float64 `json:"amount,omitempty"`
	Probability       float64 `json:"probability,omitempty"`
	ExpectedCloseDate string  `json:"expected_close_date,omitempty"`
	OwnerID           *int    `json:"owner_id,omitempty"`
}

type UpdateDealRequest struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Stage             *string  `json:"stage,omitempty"`
	Amount            *float64 `json:"amount,omitempty"`
	Probability       *float64 `json:"probability,omitempty"`
	ExpectedCloseDate *string  `json:"expected_close_date,omitempty"`
	ActualCloseDate   *string  `json:"actual_close_date,omitempty"`
	OwnerID           *int     `json:"owner_id,omitempty"`
	ProjectID         *int     `json:"project_id,omitempty"`
}

func (cl *CRMClient) ListDeals(ctx context.Context, f DealFilter) ([]domain.Deal, error) {
	var out []domain.Deal
	if err := cl.c.Get(ctx, "/crm/deals", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cl *CRMClient) CreateDeal(ctx context.Context, req CreateDealRequest) (*domain.Deal, error) {
	var out domain.Deal
	if err := cl.c.Post(ctx, "/crm/deals", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *CRMClient) UpdateDeal(ctx context.Context, id int, req UpdateDealRequest) (*domain.Deal, error) {
	var out domain.Deal
	if err := cl.c.Put(ctx, fmt.Sprintf("/crm/deals/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Contacts

type ContactFilter struct {
	ClientID *int
}

func (f ContactFilter) Values() url.Values {
	v := url.Values{}
	setInt(v, "client_id", f.ClientID)
	return v
}

type CreateContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ClientID  *int   `json:"client_id,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	JobTitle  string `json:"job_title,omitempty"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

func (cl *CRMClient) ListContacts(ctx context.Context, f ContactFilter) ([]domain.Contact, error) {
	var out []domain.Contact
	if err := cl.c.Get(ctx, "/crm/contacts", f.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cl *CRMClient) CreateContact(ctx context.Context, req CreateContactRequest) (*domain.Contact, error) {
	var out domain.Contact
	if err := cl.c.Post(ctx, "/crm/contacts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
