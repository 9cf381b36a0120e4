package diskrate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	root "github.com/formicidae-tracker/diskrate"
)

var ErrNotEnoughFields = errors.New("not enough data from diskstats")

// Field indexes of a record, see
// https://www.kernel.org/doc/Documentation/ABI/testing/procfs-diskstats
const (
	fieldDeviceName     = 2
	fieldSectorsRead    = 5
	fieldSectorsWritten = 9
)

// SectorsToMB converts a number of 512 bytes sectors to MiB.
func SectorsToMB(sectors float64) float64 {
	return sectors / root.SECTORS_PER_MB
}

// ParseLine parses a single /proc/diskstats record.
func ParseLine(line string) (DeviceCounters, error) {
	fields := strings.Fields(line)
	if len(fields) < root.MIN_DISKSTATS_FIELDS {
		return DeviceCounters{}, fmt.Errorf("%w: got %d fields, need at least %d",
			ErrNotEnoughFields, len(fields), root.MIN_DISKSTATS_FIELDS)
	}

	name := fields[fieldDeviceName]
	read, err := parseSectors(fields, fieldSectorsRead)
	if err != nil {
		return DeviceCounters{}, fmt.Errorf("device %s: %w", name, err)
	}
	written, err := parseSectors(fields, fieldSectorsWritten)
	if err != nil {
		return DeviceCounters{}, fmt.Errorf("device %s: %w", name, err)
	}

	return DeviceCounters{
		Name:      name,
		MBRead:    SectorsToMB(read),
		MBWritten: SectorsToMB(written),
	}, nil
}

func parseSectors(fields []string, idx int) (float64, error) {
	v, err := strconv.ParseFloat(fields[idx], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sector count in field %d: %w", idx, err)
	}
	return v, nil
}

// ParseContent parses every record of a full read of the source, in
// order. Blank lines are not records.
func ParseContent(content string) ([]DeviceCounters, error) {
	res := []DeviceCounters{}
	for i, line := range strings.Split(content, "\n") {
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		counters, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		res = append(res, counters)
	}
	return res, nil
}
