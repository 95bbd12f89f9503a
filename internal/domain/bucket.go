package domain

// SecondsPerDay converts unix timestamps to day indexes.
const SecondsPerDay = 86400

// DayIndex returns the number of whole days since the unix epoch.
func DayIndex(timestamp int64) int64 {
	return timestamp / SecondsPerDay
}

// DayBucket is the aggregated value of one metric for one calendar day.
// Tag carries the workout type for calorie buckets so queries can filter.
type DayBucket struct {
	Day   int64   `json:"day"`
	Value float64 `json:"value"`
	Tag   string  `json:"tag,omitempty"`
}

// RawSample is the immutable audit record of a single folded input event.
type RawSample struct {
	Timestamp   int64   `json:"timestamp"`
	Value       float64 `json:"value"`
	WorkoutID   string  `json:"workout_id,omitempty"`
	WorkoutType string  `json:"workout_type,omitempty"`
}

// DayBucketStore accumulates one numeric metric into an ordered sequence of
// per-day buckets while retaining every raw sample for audit and replay.
//
// Input arrives in non-decreasing time order, so a same-day record always
// lands on the last bucket and insertion is O(1) amortized. Values are
// non-negative by construction upstream; the store performs no validation.
type DayBucketStore struct {
	buckets []DayBucket
	raw     []RawSample
}

// NewDayBucketStore constructs an empty store.
func NewDayBucketStore() *DayBucketStore {
	return &DayBucketStore{}
}

// Record folds value into the bucket for day. If the last bucket already
// holds that day the value is added in place and the tag is overwritten
// (a day is expected to carry one workout type per call context); otherwise
// a new bucket is appended.
func (s *DayBucketStore) Record(day int64, value float64, tag string) {
	if n := len(s.buckets); n > 0 && s.buckets[n-1].Day == day {
		s.buckets[n-1].Value += value
		if tag != "" {
			s.buckets[n-1].Tag = tag
		}
		return
	}
	s.buckets = append(s.buckets, DayBucket{Day: day, Value: value, Tag: tag})
}

// RecordSample folds sample.Value into the bucket for sample.Timestamp's day
// and retains the sample itself.
func (s *DayBucketStore) RecordSample(sample RawSample, tag string) {
	s.raw = append(s.raw, sample)
	s.Record(DayIndex(sample.Timestamp), sample.Value, tag)
}

// Summary returns the ordered bucket sequence. The slice is a copy; callers
// may not reach the store's internal state through it.
func (s *DayBucketStore) Summary() []DayBucket {
	out := make([]DayBucket, len(s.buckets))
	copy(out, s.buckets)
	return out
}

// Raw returns the retained sample log in insertion order.
func (s *DayBucketStore) Raw() []RawSample {
	out := make([]RawSample, len(s.raw))
	copy(out, s.raw)
	return out
}
