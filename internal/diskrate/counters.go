package diskrate

// DeviceCounters are the cumulative I/O volumes of a block device
// since boot, in MiB.
type DeviceCounters struct {
	Name      string  `yaml:"name"`
	MBRead    float64 `yaml:"mb_read"`
	MBWritten float64 `yaml:"mb_written"`
}

// Snapshot maps device names to the counters read in a single pass
// over the statistics source.
type Snapshot map[string]DeviceCounters

// Rate is the per period difference of a device's counters, in the
// order the device appeared in the source.
type Rate struct {
	Name      string
	MBRead    float64
	MBWritten float64
	// Baseline is set when no previous counters were available.
	Baseline bool
	// Anomaly is set when a counter decreased since the last period.
	Anomaly bool
}

// Sample is the outcome of diffing one read of the source against
// the previous snapshot.
type Sample struct {
	Rates []Rate
	Next  Snapshot
}
