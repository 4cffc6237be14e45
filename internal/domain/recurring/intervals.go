package recurring

import "math"

// intervalStats holds the day-gap statistics of a date-sorted series.
type intervalStats struct {
	intervals  []int
	meanDays   float64
	stdDevDays float64
}

// computeIntervals derives the day gaps between consecutive transactions of
// an already date-sorted series, with their mean and population standard
// deviation. A series with fewer than two dates yields zero intervals; the
// caller treats that as "not recurring".
func computeIntervals(s *series) intervalStats {
	if len(s.dates) < 2 {
		return intervalStats{}
	}

	intervals := make([]int, 0, len(s.dates)-1)
	for i := 1; i < len(s.dates); i++ {
		gap := s.dates[i].Sub(s.dates[i-1])
		intervals = append(intervals, int(math.Round(gap.Hours()/24)))
	}

	var sum float64
	for _, d := range intervals {
		sum += float64(d)
	}
	mean := sum / float64(len(intervals))

	var sqSum float64
	for _, d := range intervals {
		diff := float64(d) - mean
		sqSum += diff * diff
	}
	stdDev := math.Sqrt(sqSum / float64(len(intervals)))

	return intervalStats{intervals: intervals, meanDays: mean, stdDevDays: stdDev}
}
