package request

import (
	"strings"

	"ortomat-backend/internal/domain/payment"
	"ortomat-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type InitiatePurchaseRequest struct {
	LockerID     uuid.UUID `json:"locker_id" binding:"required"`
	CellNumber   int       `json:"cell_number" binding:"required,min=1"`
	Provider     string    `json:"provider,omitempty"`
	ReferralCode string    `json:"referral_code,omitempty"`
}

func (r InitiatePurchaseRequest) ToCommand() commands.InitiatePurchaseRequest {
	provider := payment.ProviderAcquirer
	if p := strings.TrimSpace(r.Provider); p != "" {
		provider = payment.Provider(p)
	}
	return commands.InitiatePurchaseRequest{
		LockerID:     r.LockerID,
		CellNumber:   r.CellNumber,
		Provider:     provider,
		ReferralCode: strings.TrimSpace(r.ReferralCode),
	}
}
