package cancel_booking

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID                 int64   `json:"id"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomain converts the canceled booking into the HTTP response.
func FromDomain(b *domain.Booking) *CancelBookingResponse {
	resp := &CancelBookingResponse{
		ID:                 b.ID,
		Status:             b.Status.String(),
		CancellationReason: b.CancellationReason,
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
