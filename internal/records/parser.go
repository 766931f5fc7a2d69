package records

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spacesedan/tweetverse/internal/models"
)

const (
	ColumnDate              = "date"
	ColumnTime              = "time"
	ColumnTweet             = "tweet"
	ColumnTranslatedText    = "translated_text"
	ColumnTranslatedTextAlt = "translatedText"
	ColumnCompound          = "compound"
	ColumnSentiment         = "sentiment"

	sniffSize = 512
)

var (
	requiredColumns = []string{ColumnDate, ColumnTime, ColumnTranslatedText, ColumnCompound, ColumnSentiment}

	timestampLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04"}

	// leading decimal literal, the part of "0.5abc" a lenient float parse keeps
	numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Stats describes what happened to the rows of one upload.
type Stats struct {
	RowsRead       int `json:"rows_read"`
	Retained       int `json:"retained"`
	Dropped        int `json:"dropped"`
	Untimed        int `json:"untimed"`
	UnparsedScores int `json:"unparsed_scores"`
}

type Result struct {
	Records models.RecordSet
	Stats   Stats
}

type Parser struct {
	location *time.Location
	logger   *slog.Logger
}

type Option func(*Parser)

// WithLocation sets the zone the date and time columns are read in. UTC by default.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		if loc != nil {
			p.location = loc
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		location: time.UTC,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a whole CSV stream into a RecordSet using the default parser.
func Parse(r io.Reader) (models.RecordSet, error) {
	res, err := NewParser().ParseDetailed(r)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// ParseUpload checks that fileName looks like a CSV and that the stream is
// text before parsing it.
func (p *Parser) ParseUpload(fileName string, r io.Reader) (*Result, error) {
	if !strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		return nil, &InvalidFileTypeError{
			FileName: filepath.Base(fileName),
			Reason:   "expected a .csv extension",
		}
	}

	br := bufio.NewReaderSize(r, sniffSize)
	head, err := br.Peek(sniffSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, &ParseError{Err: err}
	}
	if bytes.IndexByte(head, 0) >= 0 || !validUTF8Prefix(head) {
		return nil, &InvalidFileTypeError{
			FileName: filepath.Base(fileName),
			Reason:   "content is not utf-8 text",
		}
	}

	return p.ParseDetailed(br)
}

// ParseDetailed parses the stream and reports row level statistics alongside
// the records. Rows missing date, time or translated_text are dropped; rows
// whose date cannot be turned into a timestamp are kept without one.
func (p *Parser) ParseDetailed(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &EmptyOrMalformedError{}
	}
	if err != nil {
		return nil, newParseError(err)
	}
	cols := indexColumns(header)

	first, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &EmptyOrMalformedError{}
	}
	if err != nil {
		return nil, newParseError(err)
	}

	if missing := cols.missing(); len(missing) > 0 {
		p.logger.Warn("[RecordParser] Header is missing required columns",
			slog.String("missing", strings.Join(missing, ",")))
		return nil, &MissingColumnsError{Columns: missing}
	}

	res := &Result{Records: make(models.RecordSet, 0, 64)}
	for row := first; ; {
		res.Stats.RowsRead++
		if rec, ok := p.buildRecord(cols, row, &res.Stats); ok {
			res.Records = append(res.Records, rec)
		}

		row, err = reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newParseError(err)
		}
	}

	res.Stats.Retained = len(res.Records)
	if res.Stats.Retained == 0 {
		return nil, &EmptyOrMalformedError{RowsRead: res.Stats.RowsRead}
	}

	p.logger.Info("[RecordParser] Parsed csv",
		slog.Int("rows_read", res.Stats.RowsRead),
		slog.Int("retained", res.Stats.Retained),
		slog.Int("dropped", res.Stats.Dropped),
		slog.Int("untimed", res.Stats.Untimed))

	return res, nil
}

func (p *Parser) buildRecord(cols columns, row []string, stats *Stats) (models.Record, bool) {
	rec := models.Record{
		Date:           cols.get(row, ColumnDate),
		Time:           cols.get(row, ColumnTime),
		Tweet:          cols.get(row, ColumnTweet),
		TranslatedText: cols.translatedText(row),
		Sentiment:      cols.get(row, ColumnSentiment),
	}
	if rec.Date == "" || rec.Time == "" || rec.TranslatedText == "" {
		stats.Dropped++
		return rec, false
	}

	score, ok := ParseScore(cols.get(row, ColumnCompound))
	if !ok {
		stats.UnparsedScores++
	}
	rec.Compound = score

	ts, err := p.Timestamp(rec.Date, rec.Time)
	if err != nil {
		stats.Untimed++
		p.logger.Debug("[RecordParser] Row has no usable timestamp",
			slog.String("date", rec.Date),
			slog.String("time", rec.Time),
			slog.String("error", err.Error()))
	} else {
		rec.Timestamp = ts
	}

	return rec, true
}

// Timestamp combines a DD/MM/YYYY date and an HH:MM[:SS] time. Day and month
// may come without zero padding.
func (p *Parser) Timestamp(date, clock string) (time.Time, error) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("date %q is not DD/MM/YYYY", date)
	}
	day, month, year := padTwo(parts[0]), padTwo(parts[1]), parts[2]
	iso := year + "-" + month + "-" + day + "T" + clock

	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, iso, p.location)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: %w", iso, lastErr)
}

// ParseScore reads the compound column leniently: the leading decimal literal
// is used and anything unreadable becomes 0 with ok set to false.
func ParseScore(raw string) (float64, bool) {
	m := numericPrefix.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type columns map[string]int

func indexColumns(header []string) columns {
	cols := make(columns, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}
	return cols
}

func (c columns) has(name string) bool {
	_, ok := c[name]
	return ok
}

func (c columns) missing() []string {
	var missing []string
	for _, name := range requiredColumns {
		if name == ColumnTranslatedText && c.has(ColumnTranslatedTextAlt) {
			continue
		}
		if !c.has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func (c columns) get(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (c columns) translatedText(row []string) string {
	if c.has(ColumnTranslatedText) {
		return c.get(row, ColumnTranslatedText)
	}
	return c.get(row, ColumnTranslatedTextAlt)
}

func padTwo(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}

func newParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Err: err}
}

// validUTF8Prefix tolerates a rune cut off at the end of the sniffed bytes.
func validUTF8Prefix(b []byte) bool {
	for i := 0; i < utf8.UTFMax && len(b) > 0; i++ {
		if utf8.Valid(b) {
			return true
		}
		b = b[:len(b)-1]
	}
	return utf8.Valid(b)
}
