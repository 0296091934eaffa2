package domain

import "time"

// DeletionStatus é o estado de uma solicitação de exclusão de vendedor.
type DeletionStatus string

const (
	DeletionPending  DeletionStatus = "pending"
	DeletionApproved DeletionStatus = "approved"
	DeletionRejected DeletionStatus = "rejected"
)

func (s DeletionStatus) Valid() bool {
	switch s {
	case DeletionPending, DeletionApproved, DeletionRejected:
		return true
	}
	return false
}

// DeletionRequest é a solicitação de um vendedor para remover sua conta.
type DeletionRequest struct {
	ID         string         `json:"id"`
	SellerID   string         `json:"seller_id"`
	Reason     string         `json:"reason"`
	Status     DeletionStatus `json:"status"`
	AdminNotes *string        `json:"admin_notes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	// Seller é preenchido pelo enriquecimento; nil se o vendedor não existir mais.
	Seller *SellerSummary `json:"sellers"`
}

type DeletionRequestInput struct {
	SellerID string `json:"seller_id"`
	Reason   string `json:"reason"`
}

// DeletionRequestPatch permite ao administrador decidir a solicitação.
type DeletionRequestPatch struct {
	Status     *DeletionStatus `json:"status"`
	AdminNotes *string         `json:"admin_notes"`
}

func (p DeletionRequestPatch) Apply(d *DeletionRequest) {
	setIfPresent(&d.Status, p.Status)
	if p.AdminNotes != nil {
		notes := *p.AdminNotes
		d.AdminNotes = &notes
	}
}
