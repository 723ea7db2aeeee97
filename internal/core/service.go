package core

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/JonMunkholm/swingimport/internal/logging"
	"github.com/google/uuid"
)

// DefaultMaxFileSize is the source size limit when none is configured (10MB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Recorder receives parse outcomes for metrics. Implemented by
// internal/metrics; the zero Service uses a no-op recorder.
type Recorder interface {
	ParseCompleted(shape Shape, rows, dropped int, d time.Duration)
	ParseFailed(code string)
}

type nopRecorder struct{}

func (nopRecorder) ParseCompleted(Shape, int, int, time.Duration) {}
func (nopRecorder) ParseFailed(string)                            {}

// Service drives source reading, tokenizing, classification, and mapping.
// It holds no per-parse state and is safe for concurrent use.
type Service struct {
	maxFileSize int64
	limiter     *ParseLimiter
	recorder    Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithMaxFileSize sets the source size limit. Zero or negative disables it.
func WithMaxFileSize(n int64) Option {
	return func(s *Service) { s.maxFileSize = n }
}

// WithLimiter bounds concurrent parses.
func WithLimiter(l *ParseLimiter) Option {
	return func(s *Service) { s.limiter = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// NewService creates a Service. Shapes must be registered beforehand,
// usually by importing internal/core/shapes.
func NewService(opts ...Option) *Service {
	s := &Service{
		maxFileSize: DefaultMaxFileSize,
		recorder:    nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LimiterStatus returns the limiter snapshot, or a zero status when the
// service is unbounded.
func (s *Service) LimiterStatus() ParseLimiterStatus {
	if s.limiter == nil {
		return ParseLimiterStatus{}
	}
	return s.limiter.Status()
}

// WaitForParses blocks until in-flight parses finish or ctx is done.
func (s *Service) WaitForParses(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	return s.limiter.WaitForDrain(ctx)
}

// ParseFile opens path and parses it. A file that cannot be opened is a
// ReadError.
func (s *Service) ParseFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		rerr := &ReadError{Name: filepath.Base(path), Err: err}
		s.recorder.ParseFailed(MapError(rerr).Code)
		return nil, rerr
	}
	defer f.Close()

	return s.Parse(ctx, filepath.Base(path), f)
}

// ParseBytes parses an in-memory source.
func (s *Service) ParseBytes(ctx context.Context, name string, data []byte) (*Result, error) {
	return s.Parse(ctx, name, bytes.NewReader(data))
}

// Parse reads the whole source and converts it into a Record.
//
// Fatal errors are a ReadError, ErrEmptyInput, ErrFileTooLarge, or a
// limiter/context error. Malformed rows and unparseable values never fail
// the parse; they are dropped or left null.
func (s *Service) Parse(ctx context.Context, name string, r io.Reader) (*Result, error) {
	start := time.Now()
	logger := logging.WithFields(ctx, "file", name)

	res, err := s.parse(ctx, name, r, start)
	if err != nil {
		code := MapError(err).Code
		s.recorder.ParseFailed(code)
		logger.Warn("parse failed", "error", err, "code", code)
		return nil, err
	}

	s.recorder.ParseCompleted(res.Shape, res.TotalRows, res.DroppedRows, res.Duration)
	logger.Info("parse completed",
		"parse_id", res.ParseID,
		"shape", res.Shape.String(),
		"rows", res.TotalRows,
		"dropped", res.DroppedRows,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

func (s *Service) parse(ctx context.Context, name string, r io.Reader, start time.Time) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	if s.limiter != nil {
		if err := s.limiter.Acquire(ctx); err != nil {
			return nil, fmt.Errorf("acquire parse slot: %w", err)
		}
		defer s.limiter.Release()
	}

	data, err := readSource(name, r, s.maxFileSize)
	if err != nil {
		return nil, err
	}

	var table *Table
	if isWorkbook(name, data) {
		table, err = TableFromWorkbook(data)
	} else {
		table, err = TableFromText(cleanText(data))
	}
	if err != nil {
		return nil, err
	}

	def, err := Classify(table.Headers)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug("shape classified",
		"file", name,
		"shape", def.Shape.String(),
		"headers", table.Headers,
	)

	return &Result{
		ParseID:     uuid.NewString(),
		FileName:    name,
		Shape:       def.Shape,
		Record:      def.Map(table),
		TotalRows:   len(table.Rows),
		DroppedRows: table.Dropped,
		Duration:    time.Since(start),
	}, nil
}
