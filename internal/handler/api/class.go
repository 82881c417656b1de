package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "fitbooking/internal/handler/dto/response"
	"fitbooking/internal/handler/httperr"
	"fitbooking/internal/pkg/config"
	"fitbooking/internal/pkg/timezone"
	"fitbooking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	classQueries queries.ClassQueries
	cfg          config.BookingConfig
}

func NewClassHandler(classQueries queries.ClassQueries, cfg config.Config) *ClassHandler {
	return &ClassHandler{
		classQueries: classQueries,
		cfg:          cfg.Booking,
	}
}

func (h *ClassHandler) List(c *gin.Context) {
	tz := c.DefaultQuery("timezone", h.cfg.DefaultTimezone)

	views, err := h.classQueries.ListUpcoming(c.Request.Context(), tz)
	if err != nil {
		h.abortQueryErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClassViews(views))
}

func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := h.parseClassID(c)
	if !ok {
		return
	}

	tz := c.DefaultQuery("timezone", h.cfg.DefaultTimezone)

	view, err := h.classQueries.GetByID(c.Request.Context(), id, tz)
	if err != nil {
		h.abortQueryErr(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *ClassHandler) Availability(c *gin.Context) {
	id, ok := h.parseClassID(c)
	if !ok {
		return
	}

	view, err := h.classQueries.GetAvailability(c.Request.Context(), id)
	if err != nil {
		h.abortQueryErr(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *ClassHandler) parseClassID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid class id"), "Invalid class ID format", nil)
		return 0, false
	}
	return id, true
}

func (h *ClassHandler) abortQueryErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrClassNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Class not found", nil)
	case errors.Is(err, timezone.ErrUnknownTimezone):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown timezone", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
