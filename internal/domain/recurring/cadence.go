package recurring

// Cadence is the classified recurrence period of a series.
type Cadence string

const (
	CadenceWeekly     Cadence = "weekly"
	CadenceMonthly    Cadence = "monthly"
	CadenceQuarterly  Cadence = "quarterly"
	CadenceSemiAnnual Cadence = "semi-annual"
	CadenceAnnual     Cadence = "annual"
	CadenceUnknown    Cadence = "unknown"
)

// AnnualMultiplier converts a per-cadence average amount into a projected
// yearly total. Unknown cadences are assumed monthly; that is a deliberate
// conservative default so an unclassified but regular series still counts
// toward the yearly projection.
func (c Cadence) AnnualMultiplier() float64 {
	switch c {
	case CadenceWeekly:
		return 52
	case CadenceMonthly:
		return 12
	case CadenceQuarterly:
		return 4
	case CadenceSemiAnnual:
		return 2
	case CadenceAnnual:
		return 1
	default:
		return 12
	}
}

// Thresholds are the upper bounds, in mean days between occurrences, for each
// cadence bucket. A mean gap above Annual is not classified.
type Thresholds struct {
	Weekly     float64
	Monthly    float64
	Quarterly  float64
	SemiAnnual float64
	Annual     float64
}

// Bucket maps a mean day-gap to a cadence.
func (t Thresholds) Bucket(meanDays float64) Cadence {
	switch {
	case meanDays <= t.Weekly:
		return CadenceWeekly
	case meanDays <= t.Monthly:
		return CadenceMonthly
	case meanDays <= t.Quarterly:
		return CadenceQuarterly
	case meanDays <= t.SemiAnnual:
		return CadenceSemiAnnual
	case meanDays <= t.Annual:
		return CadenceAnnual
	default:
		return CadenceUnknown
	}
}
