package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"

	"github.com/mrepo-go/mrepo/internal/model"
)

// diodeBufferSize and diodePollInterval bound how much the non-blocking
// file writer queues before it starts dropping lines.
const (
	diodeBufferSize   = 1000
	diodePollInterval = 10 * time.Millisecond
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type fileCloser struct {
	diode diode.Writer
	file  *os.File
}

// Close flushes the diode; diode.Writer.Close also closes the wrapped file.
func (c fileCloser) Close() error {
	return c.diode.Close()
}

// Init configures the global zerolog logger from cfg and returns a closer
// the caller must flush on exit (a no-op unless cfg writes to a file).
func Init(cfg model.Log) (io.Closer, error) {
	if cfg.Disabled {
		log.Logger = zerolog.Nop()
		return nopCloser{}, nil
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	writer, closer, err := sink(cfg)
	if err != nil {
		return nil, err
	}

	ctx := zerolog.New(writer).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	log.Logger = ctx.Logger()
	return closer, nil
}

// sink builds the destination writer for cfg: a colorized console writer
// when output is unset, otherwise a non-blocking file writer so a slow
// disk never stalls the goroutine doing the actual work.
func sink(cfg model.Log) (io.Writer, io.Closer, error) {
	if cfg.Output == "" {
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, nopCloser{}, nil
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", cfg.Output, err)
	}

	d := diode.NewWriter(f, diodeBufferSize, diodePollInterval, func(missed int) {
		log.Warn().Int("missed", missed).Msg("logging: dropped log lines under load")
	})
	return d, fileCloser{diode: d, file: f}, nil
}
