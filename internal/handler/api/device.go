package api

import (
	"net/http"

	resdto "ortomat-backend/internal/handler/dto/response"
	"ortomat-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	q queries.DeviceQueries
}

func NewDeviceHandler(q queries.DeviceQueries) *DeviceHandler {
	return &DeviceHandler{q: q}
}

// @Summary Online controllers
// @Description Devices with an open session and their latest diagnostic report
// @Tags devices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DevicesResponse
// @Router /devices [get]
func (h *DeviceHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromDeviceViews(h.q.ListOnline()))
}
