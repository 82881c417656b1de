package response

import (
	"fitbooking/internal/usecase/queries"
)

type ClassListResponse struct {
	Classes []*queries.ClassView `json:"classes"`
	Count   int                  `json:"count"`
}

func FromClassViews(views []*queries.ClassView) *ClassListResponse {
	return &ClassListResponse{
		Classes: views,
		Count:   len(views),
	}
}
