package diskrate

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/gchalk"
)

const Header = "Device          mb_reads/s      mb_wrtn/s\n\n"

// FormatRow formats a single line of the report, without any color.
func FormatRow(name string, mbRead, mbWritten float64) string {
	return formatName(name) + formatRates(mbRead, mbWritten)
}

func formatName(name string) string {
	return fmt.Sprintf("%-16s", name)
}

func formatRates(mbRead, mbWritten float64) string {
	return fmt.Sprintf("%10.2f%15.2f", mbRead, mbWritten)
}

type Renderer struct {
	style *gchalk.Builder
}

func NewRenderer(color bool) *Renderer {
	level := gchalk.LevelNone
	if color == true {
		level = gchalk.LevelBasic
	}
	return &Renderer{
		style: gchalk.New(gchalk.ForceLevel(level)),
	}
}

func (r *Renderer) Row(rate Rate) string {
	return r.style.Green(formatName(rate.Name)) +
		r.style.Blue(formatRates(rate.MBRead, rate.MBWritten))
}

// Render builds the full report of a cycle. It starts with an empty
// line to separate it from the previous one.
func (r *Renderer) Render(rates []Rate) string {
	b := strings.Builder{}
	b.WriteString("\n")
	b.WriteString(Header)
	for _, rate := range rates {
		b.WriteString(r.Row(rate))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// Write outputs the report of a cycle with a single write.
func (r *Renderer) Write(w io.Writer, rates []Rate) error {
	if _, err := io.WriteString(w, r.Render(rates)); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	return nil
}
