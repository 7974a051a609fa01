package glk

import "time"

// Timeval is a moment in time: seconds since the Unix epoch plus
// microseconds.
type Timeval struct {
	Sec      int64
	Microsec uint32
}

// Date is a broken-out calendar date and time of day. Weekday counts
// from Sunday as 0; Month from January as 1.
type Date struct {
	Year     int32
	Month    int32
	Day      int32
	Weekday  int32
	Hour     int32
	Minute   int32
	Second   int32
	Microsec uint32
}

func timevalOf(t time.Time) Timeval {
	return Timeval{
		Sec:      t.Unix(),
		Microsec: uint32(t.Nanosecond() / 1000),
	}
}

func dateOf(t time.Time) Date {
	return Date{
		Year:     int32(t.Year()),
		Month:    int32(t.Month()),
		Day:      int32(t.Day()),
		Weekday:  int32(t.Weekday()),
		Hour:     int32(t.Hour()),
		Minute:   int32(t.Minute()),
		Second:   int32(t.Second()),
		Microsec: uint32(t.Nanosecond() / 1000),
	}
}

// CurrentTime returns the current moment.
func CurrentTime() Timeval {
	return timevalOf(time.Now())
}

// CurrentSimpleTime returns the current time divided by factor, rounding
// toward negative infinity.
func CurrentSimpleTime(factor uint32) int32 {
	return simpleTime(time.Now().Unix(), factor)
}

func simpleTime(sec int64, factor uint32) int32 {
	f := int64(factor)
	q := sec / f
	if sec%f < 0 {
		q--
	}
	return int32(q)
}

// TimeToDateUTC breaks a moment out as a UTC date.
func TimeToDateUTC(tv Timeval) Date {
	return dateOf(time.Unix(tv.Sec, int64(tv.Microsec)*1000).UTC())
}

// TimeToDateLocal breaks a moment out as a local-time date.
func TimeToDateLocal(tv Timeval) Date {
	return dateOf(time.Unix(tv.Sec, int64(tv.Microsec)*1000).Local())
}

// SimpleTimeToDateUTC breaks a simple time (seconds/factor) out as a
// UTC date.
func SimpleTimeToDateUTC(stime int32, factor uint32) Date {
	return TimeToDateUTC(Timeval{Sec: int64(stime) * int64(factor)})
}

// SimpleTimeToDateLocal breaks a simple time out as a local-time date.
func SimpleTimeToDateLocal(stime int32, factor uint32) Date {
	return TimeToDateLocal(Timeval{Sec: int64(stime) * int64(factor)})
}

// DateToTimeUTC converts a UTC date back to a moment. Out-of-range
// fields normalize the way calendars do (January 32 is February 1).
func DateToTimeUTC(d Date) Timeval {
	t := time.Date(int(d.Year), time.Month(d.Month), int(d.Day),
		int(d.Hour), int(d.Minute), int(d.Second), int(d.Microsec)*1000, time.UTC)
	return timevalOf(t)
}

// DateToTimeLocal converts a local-time date back to a moment.
func DateToTimeLocal(d Date) Timeval {
	t := time.Date(int(d.Year), time.Month(d.Month), int(d.Day),
		int(d.Hour), int(d.Minute), int(d.Second), int(d.Microsec)*1000, time.Local)
	return timevalOf(t)
}
