package domain

import (
	"fmt"

	"huntlog/internal/platform/filename"
)

// ExportFileName names the plain-text export of a hunt deterministically
// from its id, date, character and location.
func ExportFileName(h Hunt) string {
	return fmt.Sprintf("hunt_%d_%s_%s_%s.txt",
		h.ID,
		filename.Sanitize(h.Date),
		filename.Sanitize(h.Character),
		filename.Sanitize(h.Location),
	)
}

// ExportContent is the verbatim report text, or a placeholder when the
// record was created without one.
func ExportContent(h Hunt) string {
	if h.RawText != "" {
		return h.RawText
	}
	return fmt.Sprintf("Hunt ID %d (Raw text missing)", h.ID)
}
