package calendar

// Overlaps decides whether [startA, endA) and [startB, endB) share at least one day.
// A stay ending on the day another begins does not overlap it.
func Overlaps(startA, endA, startB, endB Date) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// DateRange is a half-open interval of days: Start is the check-in day, End the check-out day.
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

func NewDateRange(start, end Date) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidDate
	}
	if !end.After(start) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

func (r DateRange) Nights() int {
	return r.Start.DaysUntil(r.End)
}

func (r DateRange) Overlaps(o DateRange) bool {
	return Overlaps(r.Start, r.End, o.Start, o.End)
}

// Covers reports whether the night of d lies inside the range.
func (r DateRange) Covers(d Date) bool {
	return Overlaps(r.Start, r.End, d, d.AddDays(1))
}

// EachNight lists every night of the range, Start included and End excluded.
func (r DateRange) EachNight() []Date {
	n := r.Nights()
	if n <= 0 {
		return nil
	}
	nights := make([]Date, 0, n)
	for i := 0; i < n; i++ {
		nights = append(nights, r.Start.AddDays(i))
	}
	return nights
}

func (r DateRange) String() string {
	return "[" + r.Start.String() + "," + r.End.String() + ")"
}
