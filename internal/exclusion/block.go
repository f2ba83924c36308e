package exclusion

import (
	"fmt"
	"time"

	"offtime/internal/interval"
)

// scanner is a minimal left-to-right cursor over a time-block token.
type scanner struct {
	input string
	pos   int
}

// skip consumes c if it is the next byte.
func (s *scanner) skip(c byte) bool {
	if s.pos < len(s.input) && s.input[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// eos reports whether the whole token has been consumed.
func (s *scanner) eos() bool {
	return s.pos == len(s.input)
}

// digits consumes between one and max digits and returns their value.
func (s *scanner) digits(max int) (int, bool) {
	value := 0
	count := 0
	for count < max && s.pos < len(s.input) {
		c := s.input[s.pos]
		if c < '0' || c > '9' {
			break
		}
		value = value*10 + int(c-'0')
		s.pos++
		count++
	}
	return value, count > 0
}

// digits2 consumes exactly two digits and returns their value.
func (s *scanner) digits2() (int, bool) {
	if s.pos+2 > len(s.input) {
		return 0, false
	}
	c1, c2 := s.input[s.pos], s.input[s.pos+1]
	if c1 < '0' || c1 > '9' || c2 < '0' || c2 > '9' {
		return 0, false
	}
	s.pos += 2
	return int(c1-'0')*10 + int(c2-'0'), true
}

// getHMS consumes an HH:MM:SS group. Hours may be one or two digits;
// minutes and seconds must be two. The cursor is restored on failure.
func (s *scanner) getHMS() (hh, mm, ss int, ok bool) {
	save := s.pos

	hh, ok = s.digits(2)
	if !ok || !s.skip(':') {
		s.pos = save
		return 0, 0, 0, false
	}
	mm, ok = s.digits2()
	if !ok || !s.skip(':') {
		s.pos = save
		return 0, 0, 0, false
	}
	ss, ok = s.digits2()
	if !ok {
		s.pos = save
		return 0, 0, 0, false
	}
	return hh, mm, ss, true
}

// rangeFromTimeBlock resolves one time-block token against the calendar day
// bounds [dayStart, dayEnd). Three forms are accepted:
//
//	<HH:MM:SS           before this time: [dayStart, day@HH:MM:SS)
//	>HH:MM:SS           after this time:  [day@HH:MM:SS, dayEnd)
//	HH:MM:SS-HH:MM:SS   explicit range within the day
//
// Both explicit times are anchored to the calendar day of dayStart. An
// inverted range is not rejected here; it yields an empty interval that
// callers may tolerate or discard. Any other shape, or trailing garbage
// after a valid prefix, fails with ErrMalformedTimeBlock.
func rangeFromTimeBlock(block string, dayStart, dayEnd time.Time) (interval.Interval, error) {
	s := scanner{input: block}

	if s.skip('<') {
		if hh, mm, ss, ok := s.getHMS(); ok && s.eos() {
			return interval.New(dayStart, timeOnDay(dayStart, hh, mm, ss)), nil
		}
		return interval.Interval{}, fmt.Errorf("%w: '%s'", ErrMalformedTimeBlock, block)
	}

	if s.skip('>') {
		if hh, mm, ss, ok := s.getHMS(); ok && s.eos() {
			return interval.New(timeOnDay(dayStart, hh, mm, ss), dayEnd), nil
		}
		return interval.Interval{}, fmt.Errorf("%w: '%s'", ErrMalformedTimeBlock, block)
	}

	if hh1, mm1, ss1, ok := s.getHMS(); ok && s.skip('-') {
		if hh2, mm2, ss2, ok := s.getHMS(); ok && s.eos() {
			return interval.New(
				timeOnDay(dayStart, hh1, mm1, ss1),
				timeOnDay(dayStart, hh2, mm2, ss2)), nil
		}
	}

	return interval.Interval{}, fmt.Errorf("%w: '%s'", ErrMalformedTimeBlock, block)
}

// timeOnDay anchors a wall-clock time to the calendar day of ref.
func timeOnDay(ref time.Time, hh, mm, ss int) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hh, mm, ss, 0, ref.Location())
}
