package response

import (
	"fitbooking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Message   string    `json:"message"`
}

type CancelBookingResponse struct {
	Message string `json:"message"`
}

type BookingListResponse struct {
	Bookings []*queries.BookingView `json:"bookings"`
	Count    int                    `json:"count"`
}

func FromBookingViews(views []*queries.BookingView) *BookingListResponse {
	return &BookingListResponse{
		Bookings: views,
		Count:    len(views),
	}
}
