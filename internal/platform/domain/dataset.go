package domain

import (
	"strconv"
	"time"
)

// Dataset describes an uploaded data-science dataset. Datasets are only ever
// added and removed; there is no update-in-place operation.
type Dataset struct {
	ID         int64
	Name       string
	Rows       int64
	Columns    int64
	UploadedBy string
	UploadDate time.Time
	ReportedBy string // optional; empty means unreported
}

// FindDataset locates a dataset by id within an already-loaded snapshot.
// A malformed id and a missing id both report not-found.
func FindDataset(datasets []Dataset, idText string) (int, bool) {
	id, ok := parseID(idText)
	if !ok {
		return 0, false
	}
	for i, dataset := range datasets {
		if dataset.ID == id {
			return i, true
		}
	}
	return 0, false
}

// parseID interprets caller-supplied id text. Only well-formed non-negative
// integers are accepted.
func parseID(idText string) (int64, bool) {
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
