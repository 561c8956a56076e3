package corpus

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hupe1980/textcluster/blobstore"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Format selects how a blob is split into documents.
type Format uint8

const (
	// FormatAuto picks FormatCSV for ".csv" blobs and FormatLines otherwise.
	FormatAuto Format = iota
	// FormatLines treats every non-blank line as one document.
	FormatLines
	// FormatCSV reads one document per record from Options.Column.
	FormatCSV
)

// String returns the flag-style name.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatLines:
		return "lines"
	case FormatCSV:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// ParseFormat parses "auto", "lines" or "csv".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "lines", "txt", "text":
		return FormatLines, nil
	case "csv":
		return FormatCSV, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

var (
	// ErrUnknownFormat is returned for unrecognized format names.
	ErrUnknownFormat = errors.New("corpus: unknown format")
	// ErrColumnOutOfRange is returned when a CSV record has no value at Options.Column.
	ErrColumnOutOfRange = errors.New("corpus: column out of range")
)

// DefaultConcurrency is the number of blobs LoadPrefix fetches in parallel.
const DefaultConcurrency = 4

// Options configures Load and LoadPrefix.
type Options struct {
	Format Format
	// Column is the zero-based CSV column holding the document text.
	Column int
	// SkipHeader drops the first CSV record.
	SkipHeader bool

	// Concurrency bounds parallel fetches in LoadPrefix. Zero uses DefaultConcurrency.
	Concurrency int
	// RequestsPerSecond paces blob fetches in LoadPrefix. Zero disables pacing.
	RequestsPerSecond float64
}

// Load reads a single blob and splits it into documents.
func Load(ctx context.Context, store blobstore.BlobStore, name string, opts Options) ([]string, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", name, err)
	}
	defer rc.Close()

	c, base := DetectCompression(name)
	r, release, err := decompressReader(rc, c)
	if err != nil {
		return nil, fmt.Errorf("corpus: %s: %w", name, err)
	}
	defer release()

	format := opts.Format
	if format == FormatAuto {
		format = formatFor(base)
	}

	docs, err := Parse(r, format, opts)
	if err != nil {
		return nil, fmt.Errorf("corpus: %s: %w", name, err)
	}
	return docs, nil
}

// LoadPrefix loads every blob under prefix and concatenates the documents in
// sorted blob name order.
func LoadPrefix(ctx context.Context, store blobstore.BlobStore, prefix string, opts Options) ([]string, error) {
	names, err := store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("corpus: list %s: %w", prefix, err)
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	parts := make([][]string, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, name := range names {
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}
			docs, err := Load(gctx, store, name, opts)
			if err != nil {
				return err
			}
			parts[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docs []string
	for _, p := range parts {
		docs = append(docs, p...)
	}
	return docs, nil
}

// Save compresses data according to the name's extension and stores it.
func Save(ctx context.Context, store blobstore.BlobStore, name string, data []byte) error {
	c, _ := DetectCompression(name)
	encoded, err := compress(data, c)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, name, encoded); err != nil {
		return fmt.Errorf("corpus: put %s: %w", name, err)
	}
	return nil
}

// Parse splits r into documents. FormatAuto is treated as FormatLines.
func Parse(r io.Reader, format Format, opts Options) ([]string, error) {
	switch format {
	case FormatAuto, FormatLines:
		return parseLines(r)
	case FormatCSV:
		return parseCSV(r, opts.Column, opts.SkipHeader)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func formatFor(name string) Format {
	if strings.EqualFold(path.Ext(name), ".csv") {
		return FormatCSV
	}
	return FormatLines
}

func parseLines(r io.Reader) ([]string, error) {
	var docs []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		docs = append(docs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func parseCSV(r io.Reader, column int, skipHeader bool) ([]string, error) {
	if column < 0 {
		return nil, fmt.Errorf("%w: %d", ErrColumnOutOfRange, column)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var docs []string
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if row == 0 && skipHeader {
			continue
		}
		if column >= len(rec) {
			return nil, fmt.Errorf("%w: row %d has %d fields, want column %d", ErrColumnOutOfRange, row+1, len(rec), column)
		}
		doc := strings.TrimSpace(rec[column])
		if doc == "" {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
