package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
	"github.com/yanqian/sunsafe/internal/domain/session"
)

// sessionHeader lets a UV lookup reuse the postcode selected in a session.
const sessionHeader = "X-Session-ID"

// Handler wires the HTTP transport to domain services.
type Handler struct {
	lookupSvc  lookup.Service
	sessionSvc session.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(lookupSvc lookup.Service, sessionSvc session.Service, logger *slog.Logger) *Handler {
	return &Handler{
		lookupSvc:  lookupSvc,
		sessionSvc: sessionSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// CancerData returns the incidence series for a sex and age group.
func (h *Handler) CancerData(c *gin.Context) {
	var req lookup.CancerRequest
	if !bindLookup(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.lookupSvc.CancerData(c.Request.Context(), req))
}

// UVData returns the hourly UV series for a postcode. When the postcode is
// absent the one selected in the X-Session-ID session is used.
func (h *Handler) UVData(c *gin.Context) {
	var req lookup.UVRequest
	if !bindLookup(c, &req) {
		return
	}
	if !h.sessionPostcode(c, &req.Postcode) {
		return
	}
	c.JSON(http.StatusOK, h.lookupSvc.UVData(c.Request.Context(), req))
}

// Recommendation returns sunscreen advice for a skin tone at a postcode. The
// postcode falls back to the X-Session-ID session like UVData.
func (h *Handler) Recommendation(c *gin.Context) {
	var req lookup.RecommendationRequest
	if !bindLookup(c, &req) {
		return
	}
	if !h.sessionPostcode(c, &req.Postcode) {
		return
	}
	c.JSON(http.StatusOK, h.lookupSvc.Recommendation(c.Request.Context(), req))
}

// sessionPostcode fills an empty postcode from the session header.
func (h *Handler) sessionPostcode(c *gin.Context, postcode *lookup.Postcode) bool {
	if *postcode != "" {
		return true
	}
	id := c.GetHeader(sessionHeader)
	if id == "" {
		return true
	}
	sess, err := h.sessionSvc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return false
	}
	*postcode = sess.Postcode
	return true
}

// SkinToneRecommendation returns the advice text for a skin tone.
func (h *Handler) SkinToneRecommendation(c *gin.Context) {
	var req lookup.SkinToneRequest
	if !bindLookup(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.lookupSvc.SkinToneRecommendation(c.Request.Context(), req))
}

// ClothingRecommendation returns outfit advice for UV and temperature.
func (h *Handler) ClothingRecommendation(c *gin.Context) {
	var req lookup.ClothingRequest
	if !bindLookup(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.lookupSvc.ClothingRecommendation(c.Request.Context(), req))
}

// SunscreenRecommendation returns SPF advice for a skin type and UV index.
func (h *Handler) SunscreenRecommendation(c *gin.Context) {
	var req lookup.SunscreenRequest
	if !bindLookup(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.lookupSvc.SunscreenRecommendation(c.Request.Context(), req))
}

// Health reports liveness along with table sizes and lookup counts.
func (h *Handler) Health(c *gin.Context) {
	stats := h.lookupSvc.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"cancerSeries": stats.CancerSeries,
		"postcodes":    stats.Postcodes,
		"skinTones":    stats.SkinTones,
		"lookups":      stats.Usage,
	})
}

// bindLookup decodes query parameters for GET and a JSON body otherwise. An
// empty body is an empty key set, which the lookups treat as a miss.
func bindLookup(c *gin.Context, req any) bool {
	var err error
	switch {
	case c.Request.Method == http.MethodGet:
		err = c.ShouldBindQuery(req)
	case c.Request.ContentLength == 0:
		return true
	default:
		err = c.ShouldBindJSON(req)
	}
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return false
	}
	return true
}
