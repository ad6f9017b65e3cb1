package httperr

import (
	"net/http"
	"strings"

	"ortomat-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Body is the JSON error envelope every endpoint returns.
type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string) Response {
	return Response{Status: status, Error: Body{Code: code, Message: msg}}
}

type mapping struct {
	target error
	status int
	code   string
	msg    string
}

// first match wins
var mappings = []mapping{
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated", "Unauthenticated"},
	{errs.ErrLockerNotFound, http.StatusNotFound, "locker_not_found", "Locker not found"},
	{errs.ErrCellNotFound, http.StatusNotFound, "cell_not_found", "Cell not found"},
	{errs.ErrPaymentNotFound, http.StatusNotFound, "payment_not_found", "Payment not found"},
	{errs.ErrProductNotFound, http.StatusNotFound, "product_not_found", "Product not found"},
	{errs.ErrUnknownProvider, http.StatusNotFound, "unknown_provider", "Unknown payment provider"},
	{errs.ErrInvalidCellState, http.StatusConflict, "invalid_cell_state", "Cell state does not allow this operation"},
	{errs.ErrCellNotForSale, http.StatusConflict, "cell_not_for_sale", "Cell is not available for sale"},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "validation_failed", "Validation failed"},
	{errs.ErrStatusPollUnsupported, http.StatusUnprocessableEntity, "status_poll_unsupported", "Provider does not support status polling"},
	{errs.ErrDispatchFailed, http.StatusBadGateway, "dispatch_failed", "Device command failed"},
	{errs.ErrProviderUnavailable, http.StatusServiceUnavailable, "provider_unavailable", "Payment provider unavailable"},
}

// StatusFor maps a use case error to its HTTP status and public message.
func StatusFor(err error) (int, string) {
	m := lookup(err)
	return m.status, m.msg
}

func lookup(err error) mapping {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m
		}
	}
	return mapping{status: http.StatusInternalServerError, code: "internal", msg: "Internal server error"}
}

// CodeFor derives a stable code from the status when the error is not a known sentinel.
func CodeFor(err error, status int) string {
	if m := lookup(err); m.status == status && m.code != "internal" {
		return m.code
	}
	return strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
}

// Abort classifies err and aborts the request with the matching status.
// Hints attached with errs.WithHint are exposed under detail.hint.
func Abort(c *gin.Context, err error) {
	m := lookup(err)
	var detail any
	if hint := errs.Hints(err); hint != "" {
		detail = gin.H{"hint": hint}
	}
	abort(c, m.status, err, m.code, m.msg, detail)
}

// AbortWithError keeps the original error on the gin context for the error and logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, CodeFor(err, status), msg, detail)
}

func abort(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	resp := NewResponse(status, code, msg)
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
