package api

import (
	"net/http"
	"strconv"

	reqdto "ortomat-backend/internal/handler/dto/request"
	resdto "ortomat-backend/internal/handler/dto/response"
	"ortomat-backend/internal/handler/httperr"
	"ortomat-backend/internal/usecase/commands"
	"ortomat-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LockerHandler struct {
	cmds commands.LockerCommands
	q    queries.LockerQueries
}

func NewLockerHandler(cmds commands.LockerCommands, q queries.LockerQueries) *LockerHandler {
	return &LockerHandler{cmds: cmds, q: q}
}

// @Summary Create locker
// @Description Registers a locker and creates its vacant cells
// @Tags lockers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLockerRequest true "Locker"
// @Success 201 {object} resdto.LockerResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /lockers [post]
func (h *LockerHandler) Create(c *gin.Context) {
	var req reqdto.CreateLockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	l, err := h.cmds.CreateLocker(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLocker(l))
}

// @Summary List lockers
// @Tags lockers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LockerResponse
// @Router /lockers [get]
func (h *LockerHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromLockerViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render lockers", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get locker
// @Tags lockers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Success 200 {object} resdto.LockerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lockers/{id} [get]
func (h *LockerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromLockerView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render locker", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List cells
// @Description Cells of a locker with occupancy and assigned product
// @Tags lockers
// @Produce json
// @Param id path string true "Locker ID"
// @Success 200 {array} resdto.CellResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lockers/{id}/cells [get]
func (h *LockerHandler) ListCells(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	views, err := h.q.ListCells(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCellViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render cells", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cell history
// @Description Audit trail of openings and occupancy changes for one cell, newest first
// @Tags lockers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Locker ID"
// @Param number path int true "Cell number"
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /lockers/{id}/cells/{number}/history [get]
func (h *LockerHandler) CellHistory(c *gin.Context) {
	key, err := parseCellKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cell", nil)
		return
	}
	limit := queries.DefaultHistoryLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	cursor := queries.Cursor{After: c.Query("after")}
	page, err := h.q.CellHistory(c.Request.Context(), key.LockerID, key.Number, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromHistoryPage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render history", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
