package request

import (
	"strings"

	"ortomat-backend/internal/usecase/commands"
)

type CreateLockerRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	CellCount int    `json:"cell_count" binding:"required,min=1,max=200"`
	DeviceID  string `json:"device_id"`
}

func (r CreateLockerRequest) ToCommand() commands.CreateLockerRequest {
	return commands.CreateLockerRequest{
		Name:      strings.TrimSpace(r.Name),
		Address:   r.Address,
		CellCount: r.CellCount,
		DeviceID:  r.DeviceID,
	}
}
