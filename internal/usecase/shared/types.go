package shared

import (
	"time"

	"ortomat-backend/internal/domain/cell"

	"github.com/google/uuid"
)

// CellSnapshot is a cell with the names an operator needs to read an audit trail.
type CellSnapshot struct {
	Cell         *cell.Cell
	LockerName   string
	DeviceID     string
	ProductName  string
	ProductPrice int64
}

type ProductSnapshot struct {
	ID       uuid.UUID
	Name     string
	Price    int64
	IsActive bool
}

type AuditAction string

const (
	AuditCellOpened        AuditAction = "cell_opened"
	AuditCellRestocked     AuditAction = "cell_restocked"
	AuditProductAssigned   AuditAction = "product_assigned"
	AuditProductUnassigned AuditAction = "product_unassigned"
)

type AuditEntry struct {
	ID         uuid.UUID
	Action     AuditAction
	LockerID   uuid.UUID
	CellNumber int
	Reason     cell.ReasonKind
	Mode       cell.Mode
	Details    map[string]any
	CreatedAt  time.Time
}
