// Package stats computes rolling-window statistics over ordered day-bucket
// sequences without re-scanning raw samples.
package stats

import (
	"github.com/brandontiqui/fitness-tracking-watch/internal/domain"
)

// windowSums scans an ordered bucket sequence with two pointers and returns
// the sum of every completed window: a span of exactly `window` calendar days
// with no missing day in between. A missing day breaks the run; the partial
// window is discarded and accumulation restarts one bucket past the previous
// left edge.
//
// Each left edge is visited once. After a window completes at [slow..fast]
// the scan restarts from slow+1 rather than sliding the sum, so a sequence of
// k gapless buckets yields k-window+1 sums.
func windowSums(buckets []domain.DayBucket, window int) []float64 {
	if window < 2 || len(buckets) < 2 {
		return nil
	}

	span := int64(window - 1)
	var sums []float64

	slow, fast := 0, 1
	sum := buckets[0].Value
	for fast < len(buckets) {
		gap := buckets[fast].Day - buckets[slow].Day
		switch {
		case gap == span:
			// Window covers exactly `window` contiguous days.
			sums = append(sums, sum+buckets[fast].Value)
			slow++
			fast = slow + 1
			sum = buckets[slow].Value
		case gap < span:
			sum += buckets[fast].Value
			fast++
		default:
			// Calendar gap: this left edge can never complete.
			slow++
			fast = slow + 1
			sum = buckets[slow].Value
		}
	}
	return sums
}

// MinOverWindow returns the smallest sum over any completed window of
// `window` contiguous calendar days. An empty sequence yields 0; a
// single-bucket sequence yields that bucket's value with no window check;
// a sequence with no completed window yields 0.
func MinOverWindow(buckets []domain.DayBucket, window int) float64 {
	return reduceWindows(buckets, window, func(best, sum float64) float64 {
		if sum < best {
			return sum
		}
		return best
	})
}

// MaxOverWindow returns the largest completed-window sum, with the same
// degenerate-input behavior as MinOverWindow.
func MaxOverWindow(buckets []domain.DayBucket, window int) float64 {
	return reduceWindows(buckets, window, func(best, sum float64) float64 {
		if sum > best {
			return sum
		}
		return best
	})
}

func reduceWindows(buckets []domain.DayBucket, window int, pick func(best, sum float64) float64) float64 {
	if len(buckets) == 0 {
		return 0
	}
	if len(buckets) == 1 {
		return buckets[0].Value
	}

	sums := windowSums(buckets, window)
	if len(sums) == 0 {
		return 0
	}
	best := sums[0]
	for _, sum := range sums[1:] {
		best = pick(best, sum)
	}
	return best
}

// AverageOverWindow returns the arithmetic mean of all completed-window sums.
func AverageOverWindow(buckets []domain.DayBucket, window int) float64 {
	if len(buckets) == 0 {
		return 0
	}
	if len(buckets) == 1 {
		return buckets[0].Value
	}

	sums := windowSums(buckets, window)
	if len(sums) == 0 {
		return 0
	}
	var total float64
	for _, sum := range sums {
		total += sum
	}
	return total / float64(len(sums))
}

// AverageCaloriesPerWorkout averages completed-window calorie totals over the
// count of day buckets folded into those windows (`window` per completed
// window) rather than the window count. The asymmetry with AverageOverWindow
// is deliberate: the figure reads as calories per workout day, not per span.
func AverageCaloriesPerWorkout(buckets []domain.DayBucket, window int) float64 {
	if len(buckets) == 0 {
		return 0
	}
	if len(buckets) == 1 {
		return buckets[0].Value
	}

	sums := windowSums(buckets, window)
	if len(sums) == 0 {
		return 0
	}
	var total float64
	for _, sum := range sums {
		total += sum
	}
	return total / float64(len(sums)*window)
}

// FilterByTag keeps only the buckets whose tag matches. Days without a
// matching bucket are absent from the result, not zero, so the contiguity
// check in the window scan operates over matching days only.
func FilterByTag(buckets []domain.DayBucket, tag string) []domain.DayBucket {
	out := make([]domain.DayBucket, 0, len(buckets))
	for _, bucket := range buckets {
		if bucket.Tag == tag {
			out = append(out, bucket)
		}
	}
	return out
}
