package diskrate

import (
	"time"

	root "github.com/formicidae-tracker/diskrate"
)

// FirstSightingPolicy tells what to do with a device seen for the
// first time, i.e. without counters in the previous snapshot.
type FirstSightingPolicy int

const (
	// The counters are kept as a baseline, the device reports a rate
	// from its second sighting on.
	SightingBaseline FirstSightingPolicy = iota
	// The counters are dropped. A device is only kept in the next
	// snapshot once it was already part of the previous one.
	SightingStrict
)

func (p FirstSightingPolicy) String() string {
	switch p {
	case SightingBaseline:
		return "baseline"
	case SightingStrict:
		return "strict"
	}
	return "unknown"
}

// NegativeRatePolicy tells how to report a decreasing counter
// (wraparound or reset of the statistics).
type NegativeRatePolicy int

const (
	NegativeReport NegativeRatePolicy = iota
	NegativeClamp
)

func (p NegativeRatePolicy) String() string {
	switch p {
	case NegativeReport:
		return "report"
	case NegativeClamp:
		return "clamp"
	}
	return "unknown"
}

type Config struct {
	SourcePath    string
	Period        time.Duration
	FirstSighting FirstSightingPolicy
	NegativeRate  NegativeRatePolicy
	Color         bool
	// Number of cycles to run, zero or negative runs forever.
	Count int
}

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		SourcePath:    root.DefaultConfig.SourcePath,
		Period:        root.DefaultConfig.Period,
		FirstSighting: SightingBaseline,
		NegativeRate:  NegativeReport,
		Color:         true,
		Count:         0,
	}
}
