package response

import (
	"time"

	"ortomat-backend/internal/domain/locker"
	"ortomat-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LockerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CellCount int       `json:"cell_count"`
	Status    string    `json:"status"`
	DeviceID  string    `json:"device_id,omitempty"`
	Online    bool      `json:"online"`
	CreatedAt time.Time `json:"created_at"`
}

func FromLocker(l *locker.Locker) *LockerResponse {
	return &LockerResponse{
		ID:        l.ID(),
		Name:      l.Name(),
		Address:   l.Address(),
		CellCount: l.CellCount(),
		Status:    string(l.Status()),
		DeviceID:  l.DeviceID(),
		CreatedAt: l.CreatedAt(),
	}
}

func FromLockerView(v *queries.LockerView) (*LockerResponse, error) {
	var res LockerResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromLockerViews(vs []*queries.LockerView) ([]*LockerResponse, error) {
	res := make([]*LockerResponse, 0, len(vs))
	if err := copier.Copy(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

type AuditLogResponse struct {
	ID        uuid.UUID      `json:"id"`
	Action    string         `json:"action"`
	Reason    string         `json:"reason"`
	Mode      string         `json:"mode,omitempty"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}

type HistoryResponse struct {
	Items      []*AuditLogResponse `json:"items"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

func FromHistoryPage(p *queries.HistoryPage) (*HistoryResponse, error) {
	items := make([]*AuditLogResponse, 0, len(p.Items))
	if err := copier.Copy(&items, p.Items); err != nil {
		return nil, err
	}
	res := &HistoryResponse{Items: items}
	if p.Next != nil {
		res.NextCursor = p.Next.After
	}
	return res, nil
}
