package request

import (
	"github.com/google/uuid"
)

// OpenCellRequest is optional on the admin open route.
type OpenCellRequest struct {
	DeviceID string `json:"device_id,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

type AssignProductRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}
