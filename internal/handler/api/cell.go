package api

import (
	"net/http"
	"strconv"

	"ortomat-backend/internal/domain/cell"
	reqdto "ortomat-backend/internal/handler/dto/request"
	resdto "ortomat-backend/internal/handler/dto/response"
	"ortomat-backend/internal/handler/httperr"
	"ortomat-backend/internal/handler/middleware"
	"ortomat-backend/internal/pkg/errs"
	"ortomat-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidCellNumber = errs.New("invalid cell number")

type CellHandler struct {
	cmds commands.CellCommands
}

func NewCellHandler(cmds commands.CellCommands) *CellHandler {
	return &CellHandler{cmds: cmds}
}

// @Summary Open cell (admin)
// @Description Unlocks a cell without changing its occupancy. Falls back to demo mode when the controller is offline.
// @Tags cells
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Param number path int true "Cell number"
// @Param request body reqdto.OpenCellRequest false "Optional device override and comment"
// @Success 200 {object} resdto.OpenCellResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /lockers/{id}/cells/{number}/open [post]
func (h *CellHandler) Open(c *gin.Context) {
	key, staffID, ok := cellRequestContext(c)
	if !ok {
		return
	}
	var req reqdto.OpenCellRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	h.open(c, commands.OpenCellRequest{
		DeviceID:   req.DeviceID,
		LockerID:   key.LockerID,
		CellNumber: key.Number,
		Reason:     cell.AdminReason{AdminID: staffID, Comment: req.Comment},
	})
}

// @Summary Open cell for refill (courier)
// @Description Unlocks a cell so a courier can restock it; the cell becomes assigned_empty
// @Tags cells
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Param number path int true "Cell number"
// @Success 200 {object} resdto.OpenCellResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lockers/{id}/cells/{number}/refill [post]
func (h *CellHandler) Refill(c *gin.Context) {
	key, staffID, ok := cellRequestContext(c)
	if !ok {
		return
	}
	h.open(c, commands.OpenCellRequest{
		LockerID:   key.LockerID,
		CellNumber: key.Number,
		Reason:     cell.RefillReason{CourierID: staffID},
	})
}

// @Summary Mark cell filled (courier)
// @Tags cells
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Param number path int true "Cell number"
// @Success 200 {object} resdto.CellResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lockers/{id}/cells/{number}/fill [post]
func (h *CellHandler) Fill(c *gin.Context) {
	key, staffID, ok := cellRequestContext(c)
	if !ok {
		return
	}
	updated, err := h.cmds.MarkFilled(c.Request.Context(), key, staffID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCell(updated))
}

// @Summary Assign product (admin)
// @Tags cells
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Param number path int true "Cell number"
// @Param request body reqdto.AssignProductRequest true "Product"
// @Success 200 {object} resdto.CellResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /lockers/{id}/cells/{number}/assign [post]
func (h *CellHandler) Assign(c *gin.Context) {
	key, staffID, ok := cellRequestContext(c)
	if !ok {
		return
	}
	var req reqdto.AssignProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.AssignProduct(c.Request.Context(), key, req.ProductID, staffID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCell(updated))
}

// @Summary Unassign product (admin)
// @Tags cells
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Param number path int true "Cell number"
// @Success 200 {object} resdto.CellResponse
// @Failure 404 {object} map[string]string
// @Router /lockers/{id}/cells/{number}/unassign [post]
func (h *CellHandler) Unassign(c *gin.Context) {
	key, staffID, ok := cellRequestContext(c)
	if !ok {
		return
	}
	updated, err := h.cmds.UnassignProduct(c.Request.Context(), key, staffID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCell(updated))
}

func (h *CellHandler) open(c *gin.Context, req commands.OpenCellRequest) {
	res, err := h.cmds.OpenCell(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpenCellResult(res))
}

// cellRequestContext aborts the request itself when it returns false.
func cellRequestContext(c *gin.Context) (cell.Key, uuid.UUID, bool) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return cell.Key{}, uuid.Nil, false
	}
	key, err := parseCellKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cell", nil)
		return cell.Key{}, uuid.Nil, false
	}
	return key, staffID, true
}

func parseCellKey(c *gin.Context) (cell.Key, error) {
	lockerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return cell.Key{}, err
	}
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil || n < 1 {
		return cell.Key{}, errInvalidCellNumber
	}
	return cell.Key{LockerID: lockerID, Number: n}, nil
}
