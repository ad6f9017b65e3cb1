package response

import (
	"time"

	"ortomat-backend/internal/domain/cell"
	"ortomat-backend/internal/usecase/commands"
	"ortomat-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CellResponse struct {
	LockerID        uuid.UUID  `json:"locker_id"`
	Number          int        `json:"number"`
	Occupancy       string     `json:"occupancy"`
	Purchasable     bool       `json:"purchasable"`
	ProductID       *uuid.UUID `json:"product_id,omitempty"`
	ProductName     string     `json:"product_name,omitempty"`
	ProductPrice    int64      `json:"product_price,omitempty"`
	LastRestockedAt *time.Time `json:"last_restocked_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromCell(c *cell.Cell) *CellResponse {
	if c == nil {
		return nil
	}
	return &CellResponse{
		LockerID:        c.LockerID(),
		Number:          c.Number(),
		Occupancy:       c.Occupancy().String(),
		Purchasable:     c.IsPurchasable(),
		ProductID:       c.ProductID(),
		LastRestockedAt: c.LastRestockedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

func FromCellViews(vs []*queries.CellView) ([]*CellResponse, error) {
	res := make([]*CellResponse, 0, len(vs))
	if err := copier.Copy(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

type OpenCellResponse struct {
	Success bool          `json:"success"`
	Mode    string        `json:"mode"`
	Note    string        `json:"note"`
	Cell    *CellResponse `json:"cell,omitempty"`
}

func FromOpenCellResult(r *commands.OpenCellResult) *OpenCellResponse {
	return &OpenCellResponse{
		Success: r.Success,
		Mode:    r.Mode.String(),
		Note:    r.Note,
		Cell:    FromCell(r.Cell),
	}
}
