package domain

// HeartRateSample is one heart-rate reading classified at record time.
type HeartRateSample struct {
	Day       int64   `json:"day"`
	Timestamp int64   `json:"timestamp"`
	BPM       float64 `json:"bpm"`
	Resting   bool    `json:"resting"`
}

// HeartRateBucketer splits heart-rate readings into resting and active
// streams. Unlike the metric stores, same-day samples are not merged here;
// each reading is retained individually and grouped by day at query time.
type HeartRateBucketer struct {
	resting []HeartRateSample
	active  []HeartRateSample
}

// NewHeartRateBucketer constructs an empty bucketer.
func NewHeartRateBucketer() *HeartRateBucketer {
	return &HeartRateBucketer{}
}

// Record appends a reading to the resting or active stream according to the
// wearer's state when the sample was taken.
func (b *HeartRateBucketer) Record(timestamp int64, bpm float64, resting bool) {
	sample := HeartRateSample{
		Day:       DayIndex(timestamp),
		Timestamp: timestamp,
		BPM:       bpm,
		Resting:   resting,
	}
	if resting {
		b.resting = append(b.resting, sample)
		return
	}
	b.active = append(b.active, sample)
}

// Streams returns copies of the resting and active streams in record order.
func (b *HeartRateBucketer) Streams() (resting, active []HeartRateSample) {
	resting = make([]HeartRateSample, len(b.resting))
	copy(resting, b.resting)
	active = make([]HeartRateSample, len(b.active))
	copy(active, b.active)
	return resting, active
}
