package response

import (
	"ortomat-backend/internal/usecase/queries"
)

type DevicesResponse struct {
	Devices []*queries.DeviceView `json:"devices"`
	Count   int                   `json:"count"`
}

func FromDeviceViews(vs []*queries.DeviceView) *DevicesResponse {
	return &DevicesResponse{Devices: vs, Count: len(vs)}
}
