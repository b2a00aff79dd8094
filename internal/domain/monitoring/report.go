package monitoring

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// DayStatistics summarizes one employee's captures on one date
type DayStatistics struct {
	TotalScreenshots int        `json:"total_screenshots"`
	HoursActive      int        `json:"hours_active"` // Distinct hours with at least one capture
	FirstScreenshot  *time.Time `json:"first_screenshot"`
	LastScreenshot   *time.Time `json:"last_screenshot"`
}

// DayReport groups one employee's screenshots for one date by hour and
// five-minute bucket. Both grouping levels use numeric keys: hour 0-23,
// bucket minute 0,5,...,55. Buckets are always computed fresh from the
// rows; the report is never cached.
type DayReport struct {
	UserID     uuid.UUID                     `json:"user_id"`
	Date       string                        `json:"date"`
	Statistics DayStatistics                 `json:"statistics"`
	Hours      map[int]map[int][]*Screenshot `json:"hours"` // hour -> minute bucket -> captures
}

// HourCount is one row of the per-hour capture histogram
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// BuildDayReport assembles the grouped report for one employee and date.
// Screenshots inside a bucket are ordered by capture time ascending;
// hour and bucket keys carry no ordering of their own.
func BuildDayReport(userID uuid.UUID, date string, shots []*Screenshot) *DayReport {
	report := &DayReport{
		UserID: userID,
		Date:   date,
		Hours:  make(map[int]map[int][]*Screenshot),
	}

	ordered := make([]*Screenshot, len(shots))
	copy(ordered, shots)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CaptureTime.Before(ordered[j].CaptureTime)
	})

	hoursSeen := make(map[int]struct{})
	for _, shot := range ordered {
		buckets, ok := report.Hours[shot.Hour]
		if !ok {
			buckets = make(map[int][]*Screenshot)
			report.Hours[shot.Hour] = buckets
		}
		buckets[shot.MinuteBucket] = append(buckets[shot.MinuteBucket], shot)
		hoursSeen[shot.Hour] = struct{}{}
	}

	report.Statistics.TotalScreenshots = len(ordered)
	report.Statistics.HoursActive = len(hoursSeen)
	if len(ordered) > 0 {
		first := ordered[0].CaptureTime
		last := ordered[len(ordered)-1].CaptureTime
		report.Statistics.FirstScreenshot = &first
		report.Statistics.LastScreenshot = &last
	}

	return report
}

// BuildHourHistogram counts captures per hour of day, hours ascending.
// Hours without captures are omitted.
func BuildHourHistogram(shots []*Screenshot) []HourCount {
	counts := make(map[int]int)
	for _, shot := range shots {
		counts[shot.Hour]++
	}

	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	histogram := make([]HourCount, 0, len(hours))
	for _, h := range hours {
		histogram = append(histogram, HourCount{Hour: h, Count: counts[h]})
	}
	return histogram
}

// BuildDayStatistics computes summary statistics without the grouping
func BuildDayStatistics(shots []*Screenshot) DayStatistics {
	stats := DayStatistics{TotalScreenshots: len(shots)}
	if len(shots) == 0 {
		return stats
	}

	hoursSeen := make(map[int]struct{})
	first := shots[0].CaptureTime
	last := shots[0].CaptureTime
	for _, shot := range shots {
		hoursSeen[shot.Hour] = struct{}{}
		if shot.CaptureTime.Before(first) {
			first = shot.CaptureTime
		}
		if shot.CaptureTime.After(last) {
			last = shot.CaptureTime
		}
	}

	stats.HoursActive = len(hoursSeen)
	stats.FirstScreenshot = &first
	stats.LastScreenshot = &last
	return stats
}
