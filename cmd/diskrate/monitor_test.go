package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/formicidae-tracker/diskrate/cmd/diskrate/mock_main"
	"github.com/formicidae-tracker/diskrate/internal/diskrate"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	. "gopkg.in/check.v1"
)

type MonitorSuite struct {
	ctrl   *gomock.Controller
	reader *mock_main.MockStatsReader
	ctx    context.Context
	cancel context.CancelFunc
	config diskrate.Config
	out    *bytes.Buffer
	hook   *test.Hook
}

var _ = Suite(&MonitorSuite{})

func (s *MonitorSuite) SetUpSuite(c *C) {
	s.hook = test.NewGlobal()
}

func (s *MonitorSuite) SetUpTest(c *C) {
	s.hook.Reset()
	logrus.SetLevel(logrus.DebugLevel)
	s.ctrl = gomock.NewController(c)
	s.reader = mock_main.NewMockStatsReader(s.ctrl)
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.config = diskrate.DefaultConfig
	s.config.Color = false
	s.config.Period = time.Millisecond
	s.out = &bytes.Buffer{}
}

func (s *MonitorSuite) TearDownTest(c *C) {
	s.cancel()
	s.ctrl.Finish()
}

func diskstatsLine(name string, sectorsRead, sectorsWritten int) string {
	return fmt.Sprintf("   8       0 %s 100 0 %d 50 200 0 %d 80 0 120 130\n",
		name, sectorsRead, sectorsWritten)
}

func (s *MonitorSuite) run(c *C) error {
	errs := Start(NewMonitor(s.ctx, s.config, s.reader, s.out))
	select {
	case err := <-errs:
		return err
	case <-time.After(time.Second):
		s.cancel()
		c.Fatalf("monitor did not stop after 1s")
	}
	return nil
}

func (s *MonitorSuite) TestReportsRates(c *C) {
	s.config.Count = 2
	gomock.InOrder(
		s.reader.EXPECT().Read().Return(diskstatsLine("sda", 4096, 2048), nil),
		s.reader.EXPECT().Read().Return(diskstatsLine("sda", 6144, 4096), nil),
	)

	c.Check(s.run(c), IsNil)
	c.Check(s.out.String(), Equals, "\n"+
		"Device          mb_reads/s      mb_wrtn/s\n\n"+
		"sda                   0.00           0.00\n"+
		"\n"+
		"\n"+
		"Device          mb_reads/s      mb_wrtn/s\n\n"+
		"sda                   1.00           1.00\n"+
		"\n")
}

func (s *MonitorSuite) TestStrictFirstSighting(c *C) {
	s.config.Count = 2
	s.config.FirstSighting = diskrate.SightingStrict
	gomock.InOrder(
		s.reader.EXPECT().Read().Return(diskstatsLine("sda", 4096, 2048), nil),
		s.reader.EXPECT().Read().Return(diskstatsLine("sda", 6144, 4096), nil),
	)

	c.Check(s.run(c), IsNil)
	c.Check(bytes.Count(s.out.Bytes(), []byte("sda                   0.00           0.00\n")), Equals, 2)
}

func (s *MonitorSuite) TestStopsOnReadError(c *C) {
	s.reader.EXPECT().Read().Return("", errors.New("could not read statistics: I/O error"))
	c.Check(s.run(c), ErrorMatches, "could not read statistics: I/O error")
	c.Check(s.out.Len(), Equals, 0)
}

func (s *MonitorSuite) TestStopsOnMalformedRecord(c *C) {
	gomock.InOrder(
		s.reader.EXPECT().Read().Return(diskstatsLine("sda", 0, 0), nil),
		s.reader.EXPECT().Read().Return("   8       0 sda 1 2 3\n", nil),
	)
	err := s.run(c)
	c.Check(errors.Is(err, diskrate.ErrNotEnoughFields), Equals, true)
	c.Check(bytes.Count(s.out.Bytes(), []byte("Device")), Equals, 1)
}

func (s *MonitorSuite) TestStopsWithContext(c *C) {
	s.config.Period = time.Hour
	s.reader.EXPECT().Read().DoAndReturn(func() (string, error) {
		s.cancel()
		return diskstatsLine("sda", 0, 0), nil
	})

	c.Check(s.run(c), IsNil)
	c.Check(bytes.Count(s.out.Bytes(), []byte("Device")), Equals, 1)
}

func (s *MonitorSuite) findEntry(message string) *logrus.Entry {
	for _, e := range s.hook.AllEntries() {
		if e.Message == message {
			return e
		}
	}
	return nil
}

func (s *MonitorSuite) TestLogsAnomaliesAndDisappearances(c *C) {
	s.config.Count = 2
	gomock.InOrder(
		s.reader.EXPECT().Read().Return(diskstatsLine("sda", 4096, 0)+diskstatsLine("sdb", 0, 0), nil),
		s.reader.EXPECT().Read().Return(diskstatsLine("sda", 2048, 0), nil),
	)

	c.Check(s.run(c), IsNil)

	decreased := s.findEntry("counters decreased")
	c.Assert(decreased, Not(IsNil))
	c.Check(decreased.Level, Equals, logrus.WarnLevel)
	c.Check(decreased.Data["device"], Equals, "sda")
	c.Check(decreased.Data["mb_read"], Equals, -1.0)

	disappeared := s.findEntry("device disappeared")
	c.Assert(disappeared, Not(IsNil))
	c.Check(disappeared.Level, Equals, logrus.DebugLevel)
	c.Check(disappeared.Data["device"], Equals, "sdb")

	baseline := s.findEntry("no previous counters")
	c.Assert(baseline, Not(IsNil))
	c.Check(baseline.Data["device"], Equals, "sda")
}
