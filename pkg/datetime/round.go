package datetime

import "time"

// RoundUp returns the first instant at or after now that falls on a multiple
// of intervalMinutes counted from local midnight. Seconds are ignored, so a
// now already on a boundary is returned unchanged (10:00 stays 10:00, 10:07
// becomes 11:00 with a 60 minute interval). A non-positive interval uses the
// 60 minute default. The result may fall on the next day.
func RoundUp(now time.Time, intervalMinutes int) time.Time {
	if intervalMinutes <= 0 {
		intervalMinutes = 60
	}
	midnight := DateOf(now).In(now.Location())
	elapsed := now.Hour()*60 + now.Minute()
	steps := elapsed / intervalMinutes
	if elapsed%intervalMinutes != 0 {
		steps++
	}
	return wallClockAdd(midnight, steps*intervalMinutes)
}

// RoundedTimeOfDay is RoundUp reduced to its hour and minute.
func RoundedTimeOfDay(now time.Time, intervalMinutes int) TimeOfDay {
	return ClockOf(RoundUp(now, intervalMinutes))
}

// TimeOptions lists the time menu entries for day in loc: every interval step
// from local midnight up to the end of the day. When allowPast is false and day
// is today, entries earlier than RoundUp(now) are left out.
func TimeOptions(day Date, loc *time.Location, intervalMinutes int, now time.Time, allowPast bool) []time.Time {
	if loc == nil {
		loc = time.UTC
	}
	if intervalMinutes <= 0 {
		intervalMinutes = 60
	}
	midnight := day.In(loc)
	var earliest time.Time
	localNow := now.In(loc)
	if !allowPast && DateOf(localNow) == day {
		earliest = RoundUp(localNow, intervalMinutes)
	}

	options := make([]time.Time, 0, 24*60/intervalMinutes+1)
	for offset := 0; offset < 24*60; offset += intervalMinutes {
		slot := wallClockAdd(midnight, offset)
		if DateOf(slot) != day {
			break
		}
		if !earliest.IsZero() && slot.Before(earliest) {
			continue
		}
		options = append(options, slot)
	}
	return options
}

// wallClockAdd returns the wall-clock time minutes after midnight in
// midnight's location.
func wallClockAdd(midnight time.Time, minutes int) time.Time {
	return time.Date(midnight.Year(), midnight.Month(), midnight.Day(), 0, minutes, 0, 0, midnight.Location())
}
