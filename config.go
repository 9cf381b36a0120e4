package diskrate

import "time"

const DISKRATE_VERSION = "v0.1.0"

// Location of the kernel block device statistics.
const DISKSTATS_PATH = "/proc/diskstats"

// Sampling period. Rates are reported per period, so it must stay at
// one second for the displayed values to be MB/s.
const SAMPLE_PERIOD = 1 * time.Second

// 512 bytes sectors per MiB.
const SECTORS_PER_MB float64 = 2048.0

// Minimal number of fields of a /proc/diskstats record.
const MIN_DISKSTATS_FIELDS = 14

type Config struct {
	SourcePath string
	Period     time.Duration
}

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		SourcePath: DISKSTATS_PATH,
		Period:     SAMPLE_PERIOD,
	}
}
