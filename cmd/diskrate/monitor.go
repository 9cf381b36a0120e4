package main

import (
	"context"
	"io"
	"time"

	"github.com/formicidae-tracker/diskrate/internal/diskrate"
	"github.com/sirupsen/logrus"
)

type Monitor interface {
	Task
}

type monitor struct {
	ctx      context.Context
	reader   diskrate.StatsReader
	sampler  *diskrate.Sampler
	renderer *diskrate.Renderer
	out      io.Writer
	period   time.Duration
	count    int
	logger   *logrus.Entry
}

func NewMonitor(ctx context.Context, config diskrate.Config, reader diskrate.StatsReader, out io.Writer) Monitor {
	return &monitor{
		ctx:      ctx,
		reader:   reader,
		sampler:  diskrate.NewSampler(config),
		renderer: diskrate.NewRenderer(config.Color),
		out:      out,
		period:   config.Period,
		count:    config.Count,
		logger:   NewLogger("monitor"),
	}
}

// Run prints a report every period until the context is done, the
// requested number of reports is reached, or an error occurs. The
// period is waited after each report, so the work time adds to it.
func (m *monitor) Run() error {
	m.logger.WithFields(logrus.Fields{
		"period":         m.period,
		"count":          m.count,
		"first-sighting": m.sampler.FirstSighting,
		"negative-rate":  m.sampler.NegativeRate,
	}).Info("started")
	defer m.logger.Info("done")

	previous := diskrate.Snapshot{}
	for cycle := 1; ; cycle++ {
		next, err := m.cycle(previous)
		if err != nil {
			return err
		}
		previous = next

		if m.count > 0 && cycle >= m.count {
			return nil
		}

		timer := time.NewTimer(m.period)
		select {
		case <-m.ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

func (m *monitor) cycle(previous diskrate.Snapshot) (diskrate.Snapshot, error) {
	content, err := m.reader.Read()
	if err != nil {
		return nil, err
	}

	sample, err := m.sampler.Diff(previous, content)
	if err != nil {
		return nil, err
	}
	m.logSample(previous, sample)

	if err := m.renderer.Write(m.out, sample.Rates); err != nil {
		return nil, err
	}

	return sample.Next, nil
}

func (m *monitor) logSample(previous diskrate.Snapshot, sample diskrate.Sample) {
	seen := make(map[string]bool, len(sample.Rates))
	for _, r := range sample.Rates {
		seen[r.Name] = true
		if r.Baseline == true {
			m.logger.WithField("device", r.Name).Debug("no previous counters")
		}
		if r.Anomaly == true {
			m.logger.WithFields(logrus.Fields{
				"device":     r.Name,
				"mb_read":    r.MBRead,
				"mb_written": r.MBWritten,
			}).Warn("counters decreased")
		}
	}

	for name := range previous {
		if seen[name] == false {
			m.logger.WithField("device", name).Debug("device disappeared")
		}
	}
}
