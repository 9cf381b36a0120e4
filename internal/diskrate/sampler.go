package diskrate

// Sampler computes per device rates between consecutive reads of the
// statistics source.
type Sampler struct {
	FirstSighting FirstSightingPolicy
	NegativeRate  NegativeRatePolicy
}

func NewSampler(config Config) *Sampler {
	return &Sampler{
		FirstSighting: config.FirstSighting,
		NegativeRate:  config.NegativeRate,
	}
}

// Diff parses content and diffs every record against previous. The
// previous snapshot is only read. Any malformed record fails the
// whole sample.
func (s *Sampler) Diff(previous Snapshot, content string) (Sample, error) {
	devices, err := ParseContent(content)
	if err != nil {
		return Sample{}, err
	}

	res := Sample{
		Rates: make([]Rate, 0, len(devices)),
		Next:  make(Snapshot, len(devices)),
	}

	for _, current := range devices {
		last, ok := previous[current.Name]
		if ok == false {
			res.Rates = append(res.Rates, Rate{Name: current.Name, Baseline: true})
			if s.FirstSighting == SightingBaseline {
				res.Next[current.Name] = current
			}
			continue
		}

		res.Rates = append(res.Rates, s.rate(last, current))
		res.Next[current.Name] = current
	}

	return res, nil
}

func (s *Sampler) rate(last, current DeviceCounters) Rate {
	res := Rate{
		Name:      current.Name,
		MBRead:    current.MBRead - last.MBRead,
		MBWritten: current.MBWritten - last.MBWritten,
	}
	res.Anomaly = res.MBRead < 0 || res.MBWritten < 0
	if res.Anomaly == true && s.NegativeRate == NegativeClamp {
		res.MBRead = Max(0, res.MBRead)
		res.MBWritten = Max(0, res.MBWritten)
	}
	return res
}
