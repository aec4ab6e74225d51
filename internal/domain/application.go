package domain

import "time"

// ApplicationStatus constants
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusWithdrawn = "withdrawn"
)

// SponsorshipApplication links a sponsor profile to a tier on an event.
// The message trail is append-only: the submission message is set once and
// the response message is set at most once.
type SponsorshipApplication struct {
	ID              string     `json:"id"`
	EventID         string     `json:"event_id"`
	SponsorID       string     `json:"sponsor_id"`
	TierID          string     `json:"tier_id"`
	Status          string     `json:"status"`
	Message         string     `json:"message"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	ResponseMessage string     `json:"response_message,omitempty"`
}

// ContractStatus constants
const (
	ContractStatusDraft     = "draft"
	ContractStatusSent      = "sent"
	ContractStatusSigned    = "signed"
	ContractStatusPaid      = "paid"
	ContractStatusCompleted = "completed"
	ContractStatusDisputed  = "disputed"
)

// Contract binds an accepted application to a payable agreement.
// Amount and platform fee are in cents.
type Contract struct {
	ID               string     `json:"id"`
	ApplicationID    string     `json:"application_id"`
	OperatorID       string     `json:"operator_id"`
	SponsorID        string     `json:"sponsor_id"`
	EventID          string     `json:"event_id"`
	TierID           string     `json:"tier_id"`
	Amount           int64      `json:"amount"`
	PlatformFee      int64      `json:"platform_fee"`
	Status           string     `json:"status"`
	ContractPDFURL   string     `json:"contract_pdf_url,omitempty"`
	OperatorSignedAt *time.Time `json:"operator_signed_at,omitempty"`
	SponsorSignedAt  *time.Time `json:"sponsor_signed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// PaymentStatus constants
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Payment records money moved against a contract, in cents
type Payment struct {
	ID         string    `json:"id"`
	ContractID string    `json:"contract_id"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityLogItem is an immutable append-only audit record
type ActivityLogItem struct {
	ID         string                 `json:"id"`
	UserID     string                 `json:"user_id"`
	ActionType string                 `json:"action_type"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	Metadata   map[string]interface{} `json:"metadata"`
	CreatedAt  time.Time              `json:"created_at"`
}
