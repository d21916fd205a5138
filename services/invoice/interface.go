package invoice

import (
	"context"
	"fmt"

	"drivehub/models"
)

// Renderer produces a downloadable invoice artifact for a booking and
// returns the path it was written to.
type Renderer interface {
	CreateInvoice(ctx context.Context, booking *models.Booking) (string, error)
}

// FileName returns the artifact name for a booking's invoice.
func FileName(bookingID string) string {
	return fmt.Sprintf("invoice_%s.pdf", bookingID)
}
