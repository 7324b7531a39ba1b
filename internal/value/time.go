package value

const (
	secondsPerMinute          int64 = 60
	secondsPerHour                  = 60 * secondsPerMinute
	secondsPerDay                   = 24 * secondsPerHour
	daysPerMonth              int64 = 30
	monthsPerYear             int64 = 12
	daysPerWeek               int64 = 7
	microsecondsPerSecond     int64 = 1e6
	nanosecondsPerMicrosecond int64 = 1000
	nanosecondsPerSecond      int64 = 1e9
)

const (
	microsecondsPerMillisecond int64 = 1000
	microsecondsPerMinute            = secondsPerMinute * microsecondsPerSecond
	microsecondsPerHour              = secondsPerHour * microsecondsPerSecond
)
