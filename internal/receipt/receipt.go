package receipt

//go:generate go run go.uber.org/mock/mockgen -source=./receipt.go -destination=./mocks/exporter_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
)

const (
	// FileName is fixed: every regeneration replaces the previous receipt.
	FileName = "Updated_Booking_Receipt.pdf"

	captionText  = "This Booking Has Been Edited"
	contentWidth = 190.0 // mm, A4 minus margins
	labelWidth   = 45.0
	rowHeight    = 8.0
)

// Exporter renders a booking receipt as a single-page PDF. Export writes the
// document to the configured output directory; ExportDetached does the same on
// a detached task whose failure is logged, never surfaced to the caller.
type Exporter interface {
	Render(booking model.Booking, w io.Writer) error
	Export(ctx context.Context, booking model.Booking) (path string, err error)
	ExportDetached(ctx context.Context, booking model.Booking)
}

type pdfExporter struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Exporter {
	return &pdfExporter{
		cfg:  cfg,
		otel: ot,
	}
}

func (e *pdfExporter) Render(booking model.Booking, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(contentWidth, 10, captionText)
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(contentWidth, 10, "Booking Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)

	rows := []struct {
		label string
		value string
	}{
		{"Booking ID", strconv.FormatInt(booking.ID, 10)},
		{"Guest Name", booking.FirstName + " " + booking.LastName},
		{"Email", booking.Email},
		{"Phone", booking.Phone},
		{"Room", booking.SelectedRoom},
		{"Price", booking.Price},
		{"Check-In", booking.CheckIn},
		{"Check-Out", booking.CheckOut},
		{"Guests", strconv.Itoa(booking.Guests)},
	}

	for _, row := range rows {
		pdf.CellFormat(labelWidth, rowHeight, row.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth-labelWidth, rowHeight, row.value, "", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render receipt PDF: %w", err)
	}

	return nil
}

func (e *pdfExporter) Export(ctx context.Context, booking model.Booking) (path string, err error) {
	_, scope := e.otel.NewScope(ctx, constant.OtelReceiptScopeName, constant.OtelReceiptScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err := os.MkdirAll(e.cfg.Receipt.OutputDir, 0o755); err != nil {
		return constant.Empty, fmt.Errorf("failed to create receipt output directory: %w", err)
	}

	path = filepath.Join(e.cfg.Receipt.OutputDir, FileName)

	file, err := os.Create(path)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to create receipt file: %w", err)
	}

	if err := e.Render(booking, file); err != nil {
		file.Close()

		return constant.Empty, err
	}

	if err := file.Close(); err != nil {
		return constant.Empty, fmt.Errorf("failed to close receipt file: %w", err)
	}

	scope.AddEvent("Receipt exported to " + path)

	return path, nil
}

// ExportDetached regenerates the receipt without blocking the caller. The
// save-success path never waits on it; the export has its own failure channel
// in the log, keyed by a job id.
func (e *pdfExporter) ExportDetached(ctx context.Context, booking model.Booking) {
	jobID := uuid.NewString()

	log.Info().Str("job_id", jobID).Int64("booking_id", booking.ID).Msg("dispatching receipt export")

	go func() {
		c := context.WithoutCancel(ctx)

		path, err := e.Export(c, booking)
		if err != nil {
			log.Error().Err(err).Str("job_id", jobID).Int64("booking_id", booking.ID).Msg("receipt export failed")

			return
		}

		log.Info().Str("job_id", jobID).Str("path", path).Msg("receipt export finished")
	}()
}
