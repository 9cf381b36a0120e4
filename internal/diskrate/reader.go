package diskrate

import (
	"fmt"
	"io"
	"os"
)

//go:generate mockgen -source=reader.go -destination=../../cmd/diskrate/mock_main/reader.go -package=mock_main

// StatsReader returns the complete content of the statistics source
// each time Read is called.
type StatsReader interface {
	Read() (string, error)
	Close() error
}

type statsReader struct {
	source io.ReadSeeker
	closer io.Closer
}

// NewStatsReader wraps an already opened source. The read position is
// moved back to the start after every read.
func NewStatsReader(source io.ReadSeeker) StatsReader {
	res := &statsReader{source: source}
	if c, ok := source.(io.Closer); ok == true {
		res.closer = c
	}
	return res
}

// OpenStatsReader opens the file at path once for the whole lifetime
// of the returned reader.
func OpenStatsReader(path string) (StatsReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	return NewStatsReader(f), nil
}

func (r *statsReader) Read() (string, error) {
	content, err := io.ReadAll(r.source)
	if err != nil {
		return "", fmt.Errorf("could not read statistics: %w", err)
	}
	if _, err := r.source.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("could not rewind statistics: %w", err)
	}
	return string(content), nil
}

func (r *statsReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
