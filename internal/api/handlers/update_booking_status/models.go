package update_booking_status

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string  `json:"status"` // confirmed | canceled | completed | no_show
	Reason *string `json:"reason,omitempty"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomain converts the updated booking into the HTTP response.
func FromDomain(b *domain.Booking) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:        b.ID,
		Status:    b.Status.String(),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}
