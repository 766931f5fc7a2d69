package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/spacesedan/tweetverse/internal/daterange"
	"github.com/spacesedan/tweetverse/internal/models"
	"github.com/spacesedan/tweetverse/internal/records"
)

// Dataset is one parsed upload. It is never modified after NewDataset
// returns; a new upload replaces it wholesale.
type Dataset struct {
	ID         string
	FileName   string
	Records    models.RecordSet
	Stats      records.Stats
	Bounds     models.DateRange
	UploadedAt time.Time
}

func NewDataset(fileName string, res *records.Result, now time.Time) *Dataset {
	return &Dataset{
		ID:         uuid.NewString(),
		FileName:   fileName,
		Records:    res.Records,
		Stats:      res.Stats,
		Bounds:     daterange.ComputeRange(res.Records, now),
		UploadedAt: now,
	}
}

// View is a snapshot of a session's dataset seen through its current range.
type View struct {
	Dataset   *Dataset
	Selection daterange.Selection
	Range     models.DateRange
	Records   models.RecordSet
}

func (v View) Showing() int {
	return len(v.Records)
}

func (v View) Total() int {
	return len(v.Dataset.Records)
}

func newView(ds *Dataset, sel daterange.Selection) View {
	v := View{Dataset: ds, Selection: sel, Records: ds.Records}
	if r, ok := sel.Range(); ok {
		v.Range = r
		v.Records = daterange.Filter(ds.Records, r)
	}
	return v
}
