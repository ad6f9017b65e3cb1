package api

import (
	"io"
	"net/http"

	"ortomat-backend/internal/domain/payment"
	reqdto "ortomat-backend/internal/handler/dto/request"
	resdto "ortomat-backend/internal/handler/dto/response"
	"ortomat-backend/internal/handler/httperr"
	"ortomat-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Payment provider callback
// @Description Receives a signed status report. The signature travels in X-Sign (acquirer) or X-Signature (internal).
// @Tags payments
// @Accept json
// @Produce json
// @Param provider path string true "Provider name"
// @Success 200 {object} resdto.WebhookAck
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/webhook/{provider} [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}
	signature := c.GetHeader("X-Sign")
	if signature == "" {
		signature = c.GetHeader("X-Signature")
	}

	if _, err := h.cmds.HandleEvent(c.Request.Context(), payment.Provider(c.Param("provider")), body, signature); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WebhookOK)
}

// @Summary Start a purchase
// @Description Creates an order for a stocked cell and an invoice at the payment provider
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.InitiatePurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req reqdto.InitiatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.InitiatePurchase(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPurchaseResult(res))
}

// @Summary Poll payment status
// @Description Fetches the invoice status from the provider and applies it like a callback
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param invoiceId path string true "Provider invoice ID"
// @Success 200 {object} resdto.SyncResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /payments/{invoiceId}/sync [post]
func (h *PaymentHandler) Sync(c *gin.Context) {
	out, err := h.cmds.SyncStatus(c.Request.Context(), c.Param("invoiceId"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventOutcome(out))
}
