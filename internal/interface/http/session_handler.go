package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/sunsafe/internal/domain/session"
)

// CreateSession starts a session, optionally with a postcode.
func (h *Handler) CreateSession(c *gin.Context) {
	var req session.CreateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
			return
		}
	}
	sess, err := h.sessionSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// GetSession returns a session by id.
func (h *Handler) GetSession(c *gin.Context) {
	sess, err := h.sessionSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SetSessionPostcode changes the postcode selected in a session.
func (h *Handler) SetSessionPostcode(c *gin.Context) {
	var req session.PostcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	sess, err := h.sessionSvc.SetPostcode(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, sess)
}
