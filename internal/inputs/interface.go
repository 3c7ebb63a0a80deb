package inputs

import (
	"context"
	"time"
)

// Repository stores puzzle inputs keyed by year and day.
type Repository interface {
	Put(ctx context.Context, in *Input) error
	Get(ctx context.Context, year, day int) (*Input, error)
	List(ctx context.Context) ([]Entry, error)
	Close() error
}

// Input is a stored puzzle input.
type Input struct {
	Year      int
	Day       int
	Data      string
	UpdatedAt time.Time
}

// Entry describes a stored input without its payload.
type Entry struct {
	Year      int       `json:"year" yaml:"year"`
	Day       int       `json:"day" yaml:"day"`
	Bytes     int       `json:"bytes" yaml:"bytes"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// ValidKey reports whether year and day name a possible puzzle.
func ValidKey(year, day int) bool {
	return year >= 2015 && day >= 1 && day <= 25
}
