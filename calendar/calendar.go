package calendar

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Calendar is a bit-packed set of calendar days covering a contiguous range
// of years: one 32-bit word per (year, month), bit i (0-indexed) set means
// day i+1 of that month is a member.
//
// A zero-value Calendar (via NewCalendar with count 0) contains no days and
// answers false to every Contains query.
type Calendar struct {
	startYear int
	words     [][12]uint32 // words[y][m] for year startYear+y, month m (0-indexed)
}

// NewCalendar creates an empty Calendar covering [startYear, startYear+yearCount).
func NewCalendar(startYear, yearCount int) *Calendar {
	return &Calendar{
		startYear: startYear,
		words:     make([][12]uint32, yearCount),
	}
}

// Add marks (year, month, day) as a member. It is a no-op if the date falls
// outside the calendar's configured year range or is not a valid calendar
// date.
func (c *Calendar) Add(year, month, day int) {
	idx, ok := c.yearIndex(year)
	if !ok || month < 1 || month > 12 || day < 1 || day > DaysInMonth(year, month) {
		return
	}
	c.words[idx][month-1] |= 1 << uint(day-1)
}

// Contains reports whether (year, month, day) is a member of the calendar.
// Queries outside the configured year bounds return false.
func (c *Calendar) Contains(year, month, day int) bool {
	idx, ok := c.yearIndex(year)
	if !ok || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	return c.words[idx][month-1]&(1<<uint(day-1)) != 0
}

func (c *Calendar) yearIndex(year int) (int, bool) {
	if c == nil {
		return 0, false
	}
	idx := year - c.startYear
	if idx < 0 || idx >= len(c.words) {
		return 0, false
	}
	return idx, true
}

// FirstAfter returns the first member date strictly after (year, month,
// day), scanning forward one month-word at a time. The second return value
// is false if no member exists before the calendar's upper year bound.
func (c *Calendar) FirstAfter(year, month, day int) (y, m, d int, ok bool) {
	if c == nil || len(c.words) == 0 {
		return 0, 0, 0, false
	}

	idx, inRange := c.yearIndex(year)
	if !inRange {
		if year < c.startYear {
			idx, month, day = 0, 1, 0
		} else {
			return 0, 0, 0, false
		}
	}

	for ; idx < len(c.words); idx++ {
		curYear := c.startYear + idx
		startMonth := 1
		if curYear == year {
			startMonth = month
		}
		for mo := startMonth; mo <= 12; mo++ {
			word := c.words[idx][mo-1]
			startDay := 1
			if curYear == year && mo == month {
				startDay = day + 1
			}
			if startDay > 31 {
				continue
			}
			mask := word >> uint(startDay-1)
			if mask == 0 {
				continue
			}
			for offset := 0; offset < 32-(startDay-1); offset++ {
				if mask&(1<<uint(offset)) != 0 {
					return curYear, mo, startDay + offset, true
				}
			}
		}
	}
	return 0, 0, 0, false
}

// Union returns a new Calendar containing every day present in c or other,
// covering the widest year range of the two.
func Union(c, other *Calendar) *Calendar {
	start := c.startYear
	end := c.startYear + len(c.words)
	if other.startYear < start {
		start = other.startYear
	}
	if oe := other.startYear + len(other.words); oe > end {
		end = oe
	}

	merged := NewCalendar(start, end-start)
	mergeInto(merged, c)
	mergeInto(merged, other)
	return merged
}

func mergeInto(dst, src *Calendar) {
	for i := range src.words {
		year := src.startYear + i
		idx, ok := dst.yearIndex(year)
		if !ok {
			continue
		}
		for m := 0; m < 12; m++ {
			dst.words[idx][m] |= src.words[i][m]
		}
	}
}

// Serialize writes c to w in a fixed binary layout: 8-byte start-year,
// 8-byte year-count, then year_count*12*4 little-endian bytes (one uint32
// per month).
func (c *Calendar) Serialize(w io.Writer) error {
	header := make([]byte, 16)
	binary.LittleEndian.PutUint64(header[0:8], uint64(c.startYear))
	binary.LittleEndian.PutUint64(header[8:16], uint64(len(c.words)))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing calendar header: %w", err)
	}

	buf := make([]byte, 4)
	for _, year := range c.words {
		for _, word := range year {
			binary.LittleEndian.PutUint32(buf, word)
			if _, err := w.Write(buf); err != nil {
				return fmt.Errorf("writing calendar words: %w", err)
			}
		}
	}
	return nil
}

// Deserialize reads a Calendar from r in the format written by Serialize.
// It rejects truncated input rather than silently returning a partial
// calendar.
func Deserialize(r io.Reader) (*Calendar, error) {
	header := make([]byte, 16)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("reading calendar header: %w", err)
	}

	startYear := int(binary.LittleEndian.Uint64(header[0:8]))
	yearCount := int(binary.LittleEndian.Uint64(header[8:16]))
	if yearCount < 0 {
		return nil, fmt.Errorf("invalid calendar year count: %d", yearCount)
	}

	c := NewCalendar(startYear, yearCount)
	buf := make([]byte, 4)
	for y := 0; y < yearCount; y++ {
		for m := 0; m < 12; m++ {
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, fmt.Errorf("reading calendar words for year %d month %d: %w", startYear+y, m+1, err)
			}
			c.words[y][m] = binary.LittleEndian.Uint32(buf)
		}
	}
	return c, nil
}

// StartYear returns the first year covered by c.
func (c *Calendar) StartYear() int {
	return c.startYear
}

// YearCount returns the number of years covered by c.
func (c *Calendar) YearCount() int {
	return len(c.words)
}
