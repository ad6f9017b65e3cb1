package locker

import (
	"strings"
	"time"

	"ortomat-backend/internal/domain/cell"
	"ortomat-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxCells = 200

var (
	ErrInvalidName      = errs.New("locker name is required")
	ErrInvalidCellCount = errs.New("cell count out of range")
	ErrInvalidStatus    = errs.New("invalid locker status")
)

type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusMaintenance:
		return true
	default:
		return false
	}
}

type Locker struct {
	id        uuid.UUID
	name      string
	address   string
	cellCount int
	status    Status
	deviceID  string
	createdAt time.Time
}

func NewLocker(name, address string, cellCount int, deviceID string, now time.Time) (*Locker, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if cellCount < 1 || cellCount > MaxCells {
		return nil, ErrInvalidCellCount
	}

	return &Locker{
		id:        uuid.New(),
		name:      name,
		address:   strings.TrimSpace(address),
		cellCount: cellCount,
		status:    StatusActive,
		deviceID:  strings.TrimSpace(deviceID),
		createdAt: now,
	}, nil
}

func ReconstructLocker(id uuid.UUID, name, address string, cellCount int, status Status, deviceID string, createdAt time.Time) *Locker {
	return &Locker{
		id:        id,
		name:      name,
		address:   address,
		cellCount: cellCount,
		status:    status,
		deviceID:  deviceID,
		createdAt: createdAt,
	}
}

// Cells materializes one vacant cell per number in 1..cellCount.
func (l *Locker) Cells() []*cell.Cell {
	cells := make([]*cell.Cell, 0, l.cellCount)
	for n := 1; n <= l.cellCount; n++ {
		c, err := cell.NewVacantCell(l.id, n, l.cellCount, l.createdAt)
		if err != nil {
			// unreachable: n is always within range
			continue
		}
		cells = append(cells, c)
	}
	return cells
}

func (l *Locker) ID() uuid.UUID        { return l.id }
func (l *Locker) Name() string         { return l.name }
func (l *Locker) Address() string      { return l.address }
func (l *Locker) CellCount() int       { return l.cellCount }
func (l *Locker) Status() Status       { return l.status }
func (l *Locker) DeviceID() string     { return l.deviceID }
func (l *Locker) CreatedAt() time.Time { return l.createdAt }
