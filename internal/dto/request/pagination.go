package request

import (
	"movie-catalog/pkg/utils"
)

type PaginatedRequest struct {
	Page int `json:"page" validate:"min=1"`
	Size int `json:"size" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit())
}

// Limit is a backstop; validation rejects out-of-range sizes before
// the request reaches the service.
func (p PaginatedRequest) Limit() int {
	if p.Size < 1 {
		return 10
	}
	if p.Size > 100 {
		return 100
	}
	return p.Size
}
