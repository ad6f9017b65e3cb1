package queries

import (
	"time"

	"ortomat-backend/internal/device"
)

type DiagnosticView struct {
	UptimeMs   int64     `json:"uptime_ms"`
	WifiRSSI   int       `json:"wifi_rssi"`
	ReportedAt time.Time `json:"reported_at"`
}

type DeviceView struct {
	DeviceID    string          `json:"device_id"`
	ConnectedAt time.Time       `json:"connected_at"`
	Diagnostic  *DiagnosticView `json:"diagnostic,omitempty"`
}

type SessionLister interface {
	ListOnline() []device.Session
}

type DeviceQueries interface {
	ListOnline() []*DeviceView
}

type deviceQueriesImpl struct {
	sessions SessionLister
}

func NewDeviceQueries(sessions SessionLister) DeviceQueries {
	return &deviceQueriesImpl{sessions: sessions}
}

func (q *deviceQueriesImpl) ListOnline() []*DeviceView {
	sessions := q.sessions.ListOnline()
	out := make([]*DeviceView, 0, len(sessions))
	for _, s := range sessions {
		v := &DeviceView{DeviceID: s.DeviceID, ConnectedAt: s.ConnectedAt}
		if s.Diagnostic != nil {
			v.Diagnostic = &DiagnosticView{
				UptimeMs:   s.Diagnostic.UptimeMs,
				WifiRSSI:   s.Diagnostic.WifiRSSI,
				ReportedAt: s.Diagnostic.ReportedAt,
			}
		}
		out = append(out, v)
	}
	return out
}
