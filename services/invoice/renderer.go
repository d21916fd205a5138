package invoice

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"drivehub/models"
)

// FileRenderer writes single-page PDF invoices into a local directory that
// the router serves statically.
type FileRenderer struct {
	Dir string
}

// NewFileRenderer creates the artifact directory if needed.
func NewFileRenderer(dir string) (*FileRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create invoice directory %s: %w", dir, err)
	}
	return &FileRenderer{Dir: dir}, nil
}

// CreateInvoice renders the booking snapshot and writes it to disk,
// replacing any previous artifact for the same booking.
func (r *FileRenderer) CreateInvoice(ctx context.Context, booking *models.Booking) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(r.Dir, FileName(booking.ID))
	if err := os.WriteFile(path, renderPDF(booking), 0o644); err != nil {
		return "", fmt.Errorf("failed to write invoice for booking %s: %w", booking.ID, err)
	}
	return path, nil
}

// renderPDF builds a minimal one-page PDF with the booking summary. The
// cross-reference offsets are computed while writing, so the output is a
// well-formed document any viewer can open.
func renderPDF(b *models.Booking) []byte {
	lines := []string{
		"DriveHub Rental Invoice",
		fmt.Sprintf("Booking: %s", b.ID),
		fmt.Sprintf("Car: %s", b.CarID),
		fmt.Sprintf("Customer: %s", b.UserID),
		fmt.Sprintf("Showroom: %s", b.ShowroomID),
		fmt.Sprintf("From: %s %s", b.RentalStartDate, b.RentalStartTime),
		fmt.Sprintf("To: %s %s", b.RentalEndDate, b.RentalEndTime),
		fmt.Sprintf("Total: %.2f", b.TotalPrice),
	}

	var content bytes.Buffer
	content.WriteString("BT /F1 12 Tf 72 720 Td 16 TL\n")
	for _, line := range lines {
		fmt.Fprintf(&content, "(%s) Tj T*\n", escapePDF(line))
	}
	content.WriteString("ET\n")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func escapePDF(s string) string {
	var out bytes.Buffer
	for _, r := range s {
		switch r {
		case '(', ')', '\\':
			out.WriteByte('\\')
		}
		out.WriteRune(r)
	}
	return out.String()
}
