package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	root "github.com/formicidae-tracker/diskrate"
	"github.com/formicidae-tracker/diskrate/internal/diskrate"
	"github.com/formicidae-tracker/olympus/pkg/tm"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func main() {
	if err := execute(); err != nil {
		log.Fatalf("Unhandled error: %s", err)
	}
}

type Options struct {
	OtelEndpoint        string `long:"otel-endpoint" description:"Open telemetry endpoint to use" env:"DISKRATE_OTEL_ENDPOINT"`
	Version             bool   `short:"V" long:"version" description:"Print version and exits"`
	Verbose             []bool `short:"v" long:"verbose" description:"Enable more verbose output (can be set multiple times)"`
	NoColor             bool   `long:"no-color" description:"Never color the report"`
	StrictFirstSighting bool   `long:"strict-first-sighting" description:"Do not keep the counters of a device seen for the first time. By default they are kept as a baseline, which differs from the historical behavior where a new device never reports a rate"`
	ClampNegative       bool   `long:"clamp-negative" description:"Report decreasing counters as a null rate"`
	Count               int    `short:"n" long:"count" description:"Number of reports to print before exiting, 0 runs forever" default:"0"`
	Totals              bool   `long:"totals" description:"Print the counters since boot and exits"`
	Format              string `long:"format" description:"Format of the totals" choice:"table" choice:"yaml" default:"table"`
}

func (o *Options) DiskrateConfig(stdoutIsTerminal bool) diskrate.Config {
	res := diskrate.DefaultConfig
	res.Color = stdoutIsTerminal && o.NoColor == false
	if o.StrictFirstSighting == true {
		res.FirstSighting = diskrate.SightingStrict
	}
	if o.ClampNegative == true {
		res.NegativeRate = diskrate.NegativeClamp
	}
	if o.Count > 0 {
		res.Count = o.Count
	}
	return res
}

func setUpLogger(opts *Options) {
	if len(opts.OtelEndpoint) > 0 {
		tm.SetUpTelemetry(tm.OtelProviderArgs{
			CollectorURL:   opts.OtelEndpoint,
			ServiceName:    "diskrate",
			ServiceVersion: root.DISKRATE_VERSION,
			Level:          tm.VerboseLevel(len(opts.Verbose)),
		})
	} else {
		tm.SetUpLocal(tm.VerboseLevel(len(opts.Verbose)))
	}
}

func probeKernel() {
	logger := NewLogger("kernel")
	release, err := diskrate.KernelRelease()
	if err != nil {
		logger.WithError(err).Warn("could not get kernel release")
		return
	}
	fields, err := diskrate.DiskstatsFieldCount(release)
	if err != nil {
		logger.WithError(err).Warn("unknown diskstats layout")
		return
	}
	logger.WithFields(logrus.Fields{
		"release": release,
		"fields":  fields,
	}).Debug("diskstats layout")
}

func execute() error {
	opts := &Options{}
	_, err := flags.Parse(opts)
	if err != nil {
		if flags.WroteHelp(err) == true {
			return nil
		}
		return err
	}

	if opts.Version {
		fmt.Printf("diskrate %s\n", root.DISKRATE_VERSION)
		return nil
	}

	setUpLogger(opts)
	defer tm.Shutdown(context.Background())

	config := opts.DiskrateConfig(term.IsTerminal(int(os.Stdout.Fd())))

	reader, err := diskrate.OpenStatsReader(config.SourcePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	if opts.Totals == true {
		return diskrate.PrintTotals(reader, diskrate.TotalsFormat(opts.Format), os.Stdout)
	}

	probeKernel()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return <-Start(NewMonitor(ctx, config, reader, os.Stdout))
}
