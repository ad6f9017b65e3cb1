//go:build unit || e2e

package builder

import (
	"time"

	domcell "ortomat-backend/internal/domain/cell"

	"github.com/google/uuid"
)

type CellBuilder struct {
	LockerID        uuid.UUID
	Number          int
	ProductID       *uuid.UUID
	Occupancy       domcell.Occupancy
	LastRestockedAt *time.Time
	RestockedBy     *uuid.UUID
	UpdatedAt       time.Time
}

func NewCellBuilder() *CellBuilder {
	return &CellBuilder{
		LockerID:  uuid.New(),
		Number:    3,
		Occupancy: domcell.OccupancyVacant,
		UpdatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CellBuilder) With(mutate func(*CellBuilder)) *CellBuilder {
	mutate(b)
	return b
}

func (b *CellBuilder) WithProduct(id uuid.UUID) *CellBuilder {
	b.ProductID = &id
	return b
}

func (b *CellBuilder) Stocked() *CellBuilder {
	if b.ProductID == nil {
		b.WithProduct(uuid.New())
	}
	at := b.UpdatedAt
	courier := uuid.New()
	b.Occupancy = domcell.OccupancyStocked
	b.LastRestockedAt = &at
	b.RestockedBy = &courier
	return b
}

func (b *CellBuilder) AssignedEmpty() *CellBuilder {
	if b.ProductID == nil {
		b.WithProduct(uuid.New())
	}
	b.Occupancy = domcell.OccupancyAssignedEmpty
	return b
}

func (b *CellBuilder) BuildDomain() *domcell.Cell {
	return domcell.ReconstructCell(b.LockerID, b.Number, b.ProductID, b.Occupancy, b.LastRestockedAt, b.RestockedBy, b.UpdatedAt)
}
