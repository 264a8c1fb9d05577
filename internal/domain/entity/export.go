package entity

import "errors"

// ExportState is the phase of the export pipeline.
type ExportState int

const (
	// ExportIdle means no export has completed since the last trigger.
	ExportIdle ExportState = iota
	// ExportDrawing means the source surface is being rasterized.
	ExportDrawing
	// ExportExporting means icon sizes are being encoded and zipped.
	ExportExporting
	// ExportReady means an archive is available for download.
	ExportReady
)

// String implements fmt.Stringer.
func (s ExportState) String() string {
	switch s {
	case ExportIdle:
		return "idle"
	case ExportDrawing:
		return "drawing"
	case ExportExporting:
		return "exporting"
	case ExportReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Busy reports whether a run is in flight.
func (s ExportState) Busy() bool {
	return s == ExportDrawing || s == ExportExporting
}

// DownloadEnabled reports whether the archive may be downloaded.
func (s ExportState) DownloadEnabled() bool {
	return s == ExportReady
}

var (
	// ErrExportBusy is returned when an export is triggered while one is running.
	ErrExportBusy = errors.New("export already in progress")
	// ErrNotReady is returned when downloading before an export has completed.
	ErrNotReady = errors.New("no archive ready for download")
	// ErrEmptyGlyph is returned when asked to draw nothing.
	ErrEmptyGlyph = errors.New("glyph is empty")
	// ErrDatasetUnavailable is returned when the emoji dataset could not be loaded.
	ErrDatasetUnavailable = errors.New("emoji dataset unavailable")
)
