//go:build unit || e2e

package builder

import (
	"time"

	domlocker "ortomat-backend/internal/domain/locker"
	reqdto "ortomat-backend/internal/handler/dto/request"
	"ortomat-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type LockerBuilder struct {
	ID        uuid.UUID
	Name      string
	Address   string
	CellCount int
	Status    domlocker.Status
	DeviceID  string
	Online    bool
	CreatedAt time.Time
}

func NewLockerBuilder() *LockerBuilder {
	return &LockerBuilder{
		ID:        uuid.New(),
		Name:      "Pharmacy Lobby",
		Address:   "Khreshchatyk 1, Kyiv",
		CellCount: 8,
		Status:    domlocker.StatusActive,
		DeviceID:  "esp32-lobby-01",
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *LockerBuilder) With(mutate func(*LockerBuilder)) *LockerBuilder {
	mutate(b)
	return b
}

func (b *LockerBuilder) BuildDomain() *domlocker.Locker {
	return domlocker.ReconstructLocker(b.ID, b.Name, b.Address, b.CellCount, b.Status, b.DeviceID, b.CreatedAt)
}

func (b *LockerBuilder) BuildView() *queries.LockerView {
	return &queries.LockerView{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		CellCount: b.CellCount,
		Status:    string(b.Status),
		DeviceID:  b.DeviceID,
		Online:    b.Online,
		CreatedAt: b.CreatedAt,
	}
}

func (b *LockerBuilder) BuildCreateRequestDTO() reqdto.CreateLockerRequest {
	return reqdto.CreateLockerRequest{
		Name:      b.Name,
		Address:   b.Address,
		CellCount: b.CellCount,
		DeviceID:  b.DeviceID,
	}
}
