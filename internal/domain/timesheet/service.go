package timesheet

import "context"

type Service interface {
	// GetTimesheet returns the full grid for one project and month:
	// roster with compliance, day list, entries and totals.
	GetTimesheet(ctx context.Context, req GetTimesheetRequest) (TimesheetResponse, error)

	// UpsertEntry writes one cell. ABSENT or non-positive hours are
	// normalized to an explicit zero-hours ABSENT row; stored hours are
	// always quarter-hour multiples.
	UpsertEntry(ctx context.Context, req UpsertEntryRequest) (EntryCell, error)
}

// ExportService renders a timesheet workbook for download.
type ExportService interface {
	// Export builds the xlsx file and returns its suggested filename and
	// raw content.
	Export(ctx context.Context, req ExportRequest) (filename string, content []byte, err error)
}
