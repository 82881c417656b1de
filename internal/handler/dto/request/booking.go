package request

import "strings"

type CreateBookingRequest struct {
	ClassID     int64  `json:"class_id" binding:"required,gt=0"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
}

func (r CreateBookingRequest) TrimmedName() string {
	return strings.TrimSpace(r.ClientName)
}

type CancelBookingRequest struct {
	ClientEmail string `json:"client_email" binding:"required,email"`
}
