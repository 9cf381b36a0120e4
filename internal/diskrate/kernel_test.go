package diskrate

import (
	. "gopkg.in/check.v1"
)

type KernelSuite struct{}

var _ = Suite(&KernelSuite{})

func (s *KernelSuite) TestDiskstatsFieldCount(c *C) {
	testdata := []struct {
		Release  string
		Expected int
	}{
		{"3.10.0", 14},
		{"4.15.0-213-generic", 14},
		{"4.18", 18},
		{"4.18.0", 18},
		{"5.4.0-150-generic", 18},
		{"5.5.0", 20},
		{"6.18.44-fc-v139", 20},
		{"v6.1.0", 20},
	}

	for _, d := range testdata {
		fields, err := DiskstatsFieldCount(d.Release)
		if c.Check(err, IsNil, Commentf("release: %s", d.Release)) == false {
			continue
		}
		c.Check(fields, Equals, d.Expected, Commentf("release: %s", d.Release))
	}
}

func (s *KernelSuite) TestInvalidRelease(c *C) {
	_, err := DiskstatsFieldCount("not-a-kernel")
	c.Check(err, ErrorMatches, "invalid kernel release 'not-a-kernel': .*")
}
