package diskrate

import (
	"fmt"

	"github.com/blang/semver"
)

var (
	kernelWithDiscardStats = semver.MustParse("4.18.0")
	kernelWithFlushStats   = semver.MustParse("5.5.0")
)

// DiskstatsFieldCount returns the number of fields a record of
// /proc/diskstats carries for the given kernel release, as reported by
// uname -r.
func DiskstatsFieldCount(release string) (int, error) {
	v, err := semver.ParseTolerant(release)
	if err != nil {
		return 0, fmt.Errorf("invalid kernel release '%s': %w", release, err)
	}
	// distribution suffixes are parsed as pre-release, which would
	// order 4.18.0-generic before 4.18.0.
	v = semver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}

	if v.GE(kernelWithFlushStats) {
		return 20, nil
	}
	if v.GE(kernelWithDiscardStats) {
		return 18, nil
	}
	return 14, nil
}
