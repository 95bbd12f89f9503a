package stats

import (
	"github.com/brandontiqui/fitness-tracking-watch/internal/domain"
)

// AverageRestingHeartRate reduces a resting-stream sample run to a two-level
// mean: consecutive same-day samples collapse to per-day averages, and the
// most recent `days` per-day averages are then averaged. Days with no samples
// contribute no entry; there is no gap handling here, unlike the metric
// window scan. A non-positive or oversized `days` takes every recorded day.
func AverageRestingHeartRate(samples []domain.HeartRateSample, days int) float64 {
	if len(samples) == 0 {
		return 0
	}

	var dayMeans []float64
	for i := 0; i < len(samples); {
		day := samples[i].Day
		var sum float64
		count := 0
		for i < len(samples) && samples[i].Day == day {
			sum += samples[i].BPM
			count++
			i++
		}
		dayMeans = append(dayMeans, sum/float64(count))
	}

	if days > 0 && days < len(dayMeans) {
		dayMeans = dayMeans[len(dayMeans)-days:]
	}

	var total float64
	for _, mean := range dayMeans {
		total += mean
	}
	return total / float64(len(dayMeans))
}
