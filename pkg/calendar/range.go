package calendar

// Range is an inclusive date range. A nil End leaves the range open towards
// the latest data.
type Range struct {
	Start Date
	End   *Date
}

// Since returns the open range starting at start.
func Since(start Date) Range {
	return Range{Start: start}
}

// Between returns the closed range [start, end].
func Between(start, end Date) Range {
	return Range{Start: start, End: &end}
}

// Contains reports whether d lies inside r.
func (r Range) Contains(d Date) bool {
	if d.Before(r.Start) {
		return false
	}
	return r.End == nil || !d.After(*r.End)
}

// Inverted reports whether the range is closed and ends before it starts.
func (r Range) Inverted() bool {
	return r.End != nil && r.End.Before(r.Start)
}

func (r Range) String() string {
	if r.End == nil {
		return "[" + r.Start.String() + ", ...]"
	}
	return "[" + r.Start.String() + ", " + r.End.String() + "]"
}
