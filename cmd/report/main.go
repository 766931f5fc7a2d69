package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/spacesedan/tweetverse/config"
	"github.com/spacesedan/tweetverse/internal/daterange"
	"github.com/spacesedan/tweetverse/internal/logging"
	"github.com/spacesedan/tweetverse/internal/records"
	"github.com/spacesedan/tweetverse/internal/report"
)

func main() {
	file := flag.String("file", "", "CSV file with date, time, translated_text, compound and sentiment columns")
	start := flag.String("start", "", "first day to include (YYYY-MM-DD or RFC3339)")
	end := flag.String("end", "", "last day to include (YYYY-MM-DD or RFC3339)")
	format := flag.String("format", "text", "output format: text or json")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	settings, err := config.Load()
	if err != nil {
		fatal(err)
	}
	slog.SetDefault(logging.NewLogger(os.Stderr, logging.ParseLevel(settings.LogLevel)))

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *format != "text" && *format != "json" {
		fatal(fmt.Errorf("unknown format %q", *format))
	}

	opts := report.Options{
		SummaryWordLimit: settings.SummaryWordLimit,
		TopicLimit:       settings.TopicLimit,
		Now:              time.Now(),
	}
	if *start != "" {
		if opts.Start, err = daterange.ParseBound(*start, false); err != nil {
			fatal(err)
		}
	}
	if *end != "" {
		if opts.End, err = daterange.ParseBound(*end, true); err != nil {
			fatal(err)
		}
	}

	res, err := readFile(*file)
	if err != nil {
		fatal(err)
	}

	rep := report.Build(filepath.Base(*file), res, opts)
	if *format == "json" {
		err = report.WriteJSON(os.Stdout, rep)
	} else {
		err = report.WriteText(os.Stdout, rep)
	}
	if err != nil {
		fatal(err)
	}
}

func readFile(path string) (*records.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("reading "+filepath.Base(path)),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
	reader := progressbar.NewReader(f, bar)

	res, err := records.NewParser().ParseUpload(path, &reader)
	_ = bar.Finish()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return res, nil
}

func fatal(err error) {
	slog.Error("[Report] Failed", slog.String("error", err.Error()))
	os.Exit(1)
}
