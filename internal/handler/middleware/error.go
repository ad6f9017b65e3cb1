package middleware

import (
	"log/slog"
	"net/http"

	"ortomat-backend/internal/handler/httperr"
	"ortomat-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxLoggedStackLines = 12

// ErrorHandler renders errors recorded by handlers that did not write a body,
// and logs the underlying cause of every server-side failure.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c)

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			resp := httperr.NewResponse(http.StatusInternalServerError, "internal", "Internal server error")
			c.JSON(resp.Status, resp)
		}
	}
}

// The response only carries the public message; the wrapped chain goes to the log.
func logServerErrors(c *gin.Context) {
	if c.Writer.Status() < http.StatusInternalServerError {
		return
	}
	for _, e := range c.Errors {
		slog.Error("request failed",
			"request_id", GetRequestID(c),
			"route", c.FullPath(),
			"error", e.Err.Error(),
			"stack", errs.ExtractStackLines(e.Err, maxLoggedStackLines))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path)

				resp := httperr.NewResponse(http.StatusInternalServerError, "internal", "Internal server error")
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
