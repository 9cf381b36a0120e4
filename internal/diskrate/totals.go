package diskrate

import (
	"fmt"
	"io"

	"github.com/atuleu/go-humanize"
	"github.com/atuleu/go-tablifier"
	"gopkg.in/yaml.v2"
)

type TotalsFormat string

const (
	TotalsTable TotalsFormat = "table"
	TotalsYAML  TotalsFormat = "yaml"
)

type TotalsTableLine struct {
	Device  string
	Read    string `name:"Read since boot"`
	Written string `name:"Written since boot"`
}

func BuildTotalsLines(devices []DeviceCounters) []TotalsTableLine {
	res := make([]TotalsTableLine, 0, len(devices))
	for _, d := range devices {
		res = append(res, TotalsTableLine{
			Device:  d.Name,
			Read:    humanize.ByteSize(MBToBytes(d.MBRead)).String(),
			Written: humanize.ByteSize(MBToBytes(d.MBWritten)).String(),
		})
	}
	return res
}

// PrintTotals reads the source once and prints the cumulative
// counters of every device to w.
func PrintTotals(reader StatsReader, format TotalsFormat, w io.Writer) error {
	content, err := reader.Read()
	if err != nil {
		return err
	}
	devices, err := ParseContent(content)
	if err != nil {
		return err
	}

	switch format {
	case TotalsTable:
		return tablifier.Ftablify(w, BuildTotalsLines(devices))
	case TotalsYAML:
		return writeTotalsYAML(w, devices)
	}
	return fmt.Errorf("unsupported totals format '%s'", format)
}

func writeTotalsYAML(w io.Writer, devices []DeviceCounters) error {
	content, err := yaml.Marshal(devices)
	if err != nil {
		return fmt.Errorf("could not encode totals: %w", err)
	}
	_, err = w.Write(content)
	return err
}
