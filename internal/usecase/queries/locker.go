package queries

import (
	"context"
	"time"

	"ortomat-backend/internal/infra"
	"ortomat-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type LockerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CellCount int       `json:"cell_count"`
	Status    string    `json:"status"`
	DeviceID  string    `json:"device_id"`
	Online    bool      `json:"online"`
	CreatedAt time.Time `json:"created_at"`
}

type CellView struct {
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

type AuditLogView struct {
	ID        uuid.UUID      `json:"id"`
	Action    string         `json:"action"`
	Reason    string         `json:"reason"`
	Mode      string         `json:"mode"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}

type LockerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LockerView, error)
	List(ctx context.Context) ([]*LockerView, error)
	ListCells(ctx context.Context, lockerID uuid.UUID) ([]*CellView, error)
}

type AuditLogReadStore interface {
	// ListByCell returns entries newest first, strictly older than after when it is set.
	ListByCell(ctx context.Context, lockerID uuid.UUID, number int, after *Position, limit int32) ([]*AuditLogView, error)
}

type LockerQueries interface {
	List(ctx context.Context) ([]*LockerView, error)
	Get(ctx context.Context, id uuid.UUID) (*LockerView, error)
	ListCells(ctx context.Context, lockerID uuid.UUID) ([]*CellView, error)
	CellHistory(ctx context.Context, lockerID uuid.UUID, number int, cursor Cursor, limit int) (*HistoryPage, error)
}

type HistoryPage struct {
	Items []*AuditLogView
	Next  *Cursor
}

type lockerQueriesImpl struct {
	lockers  LockerReadStore
	audit    AuditLogReadStore
	presence Presence
}

// Presence reports controller connectivity; the device registry implements it.
type Presence interface {
	IsOnline(deviceID string) bool
}

func NewLockerQueries(lockers LockerReadStore, audit AuditLogReadStore, presence Presence) LockerQueries {
	return &lockerQueriesImpl{lockers: lockers, audit: audit, presence: presence}
}

func (q *lockerQueriesImpl) List(ctx context.Context) ([]*LockerView, error) {
	views, err := q.lockers.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Online = v.DeviceID != "" && q.presence.IsOnline(v.DeviceID)
	}
	return views, nil
}

func (q *lockerQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*LockerView, error) {
	v, err := q.lockers.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLockerNotFound
		}
		return nil, err
	}
	v.Online = v.DeviceID != "" && q.presence.IsOnline(v.DeviceID)
	return v, nil
}

func (q *lockerQueriesImpl) ListCells(ctx context.Context, lockerID uuid.UUID) ([]*CellView, error) {
	if _, err := q.Get(ctx, lockerID); err != nil {
		return nil, err
	}
	return q.lockers.ListCells(ctx, lockerID)
}

func (q *lockerQueriesImpl) CellHistory(ctx context.Context, lockerID uuid.UUID, number int, cursor Cursor, limit int) (*HistoryPage, error) {
	after, err := cursor.position()
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "history cursor"), errs.ErrDomainValidation)
	}
	l, err := q.Get(ctx, lockerID)
	if err != nil {
		return nil, err
	}
	if number < 1 || number > l.CellCount {
		return nil, errs.ErrCellNotFound
	}

	limit = ValidateLimit(limit)
	// one extra row tells whether another page exists
	items, err := q.audit.ListByCell(ctx, lockerID, number, after, int32(limit+1))
	if err != nil {
		return nil, err
	}

	page := &HistoryPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		last := page.Items[limit-1]
		page.Next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return page, nil
}
