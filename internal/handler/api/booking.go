package api

import (
	"errors"
	"net/http"

	reqdto "fitbooking/internal/handler/dto/request"
	resdto "fitbooking/internal/handler/dto/response"
	"fitbooking/internal/handler/httperr"
	"fitbooking/internal/pkg/config"
	"fitbooking/internal/pkg/timezone"
	"fitbooking/internal/usecase/commands"
	"fitbooking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	cfg             config.BookingConfig
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries, cfg config.Config) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		cfg:             cfg.Booking,
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.AttemptBooking(c.Request.Context(), req.ClassID, req.TrimmedName(), req.ClientEmail)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrClassNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Class not found", nil)
		case errors.Is(err, commands.ErrClassInPast):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot book past or ongoing classes", nil)
		case errors.Is(err, commands.ErrClassFull):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Class is fully booked", nil)
		case errors.Is(err, commands.ErrDuplicateBooking):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "You already have a booking for this class", nil)
		case errors.Is(err, commands.ErrInvalidBooking):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		BookingID: result.BookingID,
		Message:   "Booking confirmed",
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), bookingID, req.ClientEmail); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotOwned):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found or not owned by this email", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CancelBookingResponse{Message: "Booking cancelled successfully"})
}

func (h *BookingHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("email query parameter is required"), "Email is required", nil)
		return
	}

	tz := c.DefaultQuery("timezone", h.cfg.DefaultTimezone)

	views, err := h.bookingQueries.ListByEmail(c.Request.Context(), email, tz)
	if err != nil {
		switch {
		case errors.Is(err, timezone.ErrUnknownTimezone):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown timezone", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
