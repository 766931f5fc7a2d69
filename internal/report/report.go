package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spacesedan/tweetverse/internal/daterange"
	"github.com/spacesedan/tweetverse/internal/models"
	"github.com/spacesedan/tweetverse/internal/records"
	"github.com/spacesedan/tweetverse/internal/sentiment"
	"github.com/spacesedan/tweetverse/internal/wordfreq"
)

type Options struct {
	Start            time.Time
	End              time.Time
	SummaryWordLimit int
	TopicLimit       int
	Now              time.Time
}

// Report is the offline counterpart of the dashboard for one CSV file.
type Report struct {
	File       string                   `json:"file"`
	Stats      records.Stats            `json:"stats"`
	Range      models.DateRange         `json:"range"`
	Showing    int                      `json:"showing"`
	Total      int                      `json:"total"`
	Summary    models.SummaryStats      `json:"summary"`
	Shares     []models.SentimentShare  `json:"shares"`
	TimeSeries []models.TimeSeriesPoint `json:"time_series"`
	Topics     []models.Topic           `json:"topics"`
}

// Build filters res by the requested bounds, applying the same start/end
// adjustment as the dashboard, and aggregates what remains.
func Build(file string, res *records.Result, opts Options) Report {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.SummaryWordLimit <= 0 {
		opts.SummaryWordLimit = wordfreq.SummaryLimit
	}

	sel := daterange.NewSelection(daterange.ComputeRange(res.Records, opts.Now), len(res.Records) > 0)
	if !opts.Start.IsZero() {
		sel, _ = sel.WithStart(opts.Start)
	}
	if !opts.End.IsZero() {
		sel, _ = sel.WithEnd(opts.End)
	}

	rep := Report{File: file, Stats: res.Stats, Total: len(res.Records)}
	view := res.Records
	if r, ok := sel.Range(); ok {
		rep.Range = r
		view = daterange.Filter(res.Records, r)
	}

	rep.Showing = len(view)
	rep.Summary = sentiment.Summarize(view, opts.SummaryWordLimit)
	rep.Shares = sentiment.Shares(rep.Summary.SentimentCounts)
	rep.TimeSeries = sentiment.TimeSeries(view)
	rep.Topics = wordfreq.Topics(view.Texts(), opts.TopicLimit)
	return rep
}

func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func WriteText(w io.Writer, rep Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "File\t%s\n", rep.File)
	fmt.Fprintf(tw, "Range\t%s .. %s\n", rep.Range.Start.Format(time.RFC3339), rep.Range.End.Format(time.RFC3339))
	fmt.Fprintf(tw, "Showing\t%d of %d tweets\n", rep.Showing, rep.Total)
	fmt.Fprintf(tw, "Skipped rows\t%d\n", rep.Stats.Dropped)
	fmt.Fprintf(tw, "Average sentiment\t%.2f\n", rep.Summary.AverageSentimentScore)

	fmt.Fprintln(tw)
	for _, s := range rep.Shares {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", s.Name, s.Value, s.Percent)
	}

	if len(rep.Summary.TopWords) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Top words")
		for _, wf := range rep.Summary.TopWords {
			fmt.Fprintf(tw, "  %s\t%d\n", wf.Text, wf.Count)
		}
	}

	if len(rep.Topics) > 0 {
		fmt.Fprintln(tw)
		topics := make([]string, len(rep.Topics))
		for i, t := range rep.Topics {
			topics[i] = fmt.Sprintf("%s (%d)", t.Word, t.Count)
		}
		fmt.Fprintf(tw, "Hot topics\t%s\n", strings.Join(topics, ", "))
	}

	if len(rep.TimeSeries) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Date\tPositive\tNeutral\tNegative")
		for _, p := range rep.TimeSeries {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", p.Date, p.Positive, p.Neutral, p.Negative)
		}
	}

	return tw.Flush()
}
