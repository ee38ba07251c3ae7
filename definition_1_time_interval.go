package scheduler

// TimeInterval is a span of simulated time, in work units from run start.
type TimeInterval struct {
	TimeStart int
	TimeEnd   int
}

func (interval *TimeInterval) GetDuration() int {
	return interval.TimeEnd - interval.TimeStart
}
