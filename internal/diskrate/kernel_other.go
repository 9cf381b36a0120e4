//go:build !linux

package diskrate

import (
	"errors"
	"runtime"
)

func KernelRelease() (string, error) {
	return "", errors.New("no diskstats on " + runtime.GOOS)
}
