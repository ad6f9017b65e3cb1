package response

import (
	"ortomat-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type WebhookAck struct {
	Status string `json:"status"`
}

var WebhookOK = WebhookAck{Status: "ok"}

type PurchaseResponse struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	InvoiceID   string    `json:"invoice_id"`
	PageURL     string    `json:"page_url"`
	Amount      int64     `json:"amount"`
}

func FromPurchaseResult(r *commands.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{
		OrderID:     r.OrderID,
		OrderNumber: r.OrderNumber,
		InvoiceID:   r.InvoiceID,
		PageURL:     r.PageURL,
		Amount:      r.Amount,
	}
}

type SyncResponse struct {
	Outcome   string            `json:"outcome"`
	InvoiceID string            `json:"invoice_id"`
	Status    string            `json:"status,omitempty"`
	SaleID    *uuid.UUID        `json:"sale_id,omitempty"`
	Cell      *OpenCellResponse `json:"cell,omitempty"`
}

func FromEventOutcome(o *commands.EventOutcome) *SyncResponse {
	res := &SyncResponse{
		Outcome:   string(o.Outcome),
		InvoiceID: o.InvoiceID,
		Status:    o.Status.String(),
		SaleID:    o.SaleID,
	}
	if o.Cell != nil {
		res.Cell = FromOpenCellResult(o.Cell)
	}
	return res
}
