package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NemesisID/PreviewOnly-Dash/entity"
)

var ErrInvalidFilter = errors.New("invalid export filter")

const dateLayout = time.DateOnly

// Filter narrows the orders going into an export. Zero values mean "no constraint".
// End is inclusive through the last nanosecond of its calendar day.
type Filter struct {
	Start  *time.Time
	End    *time.Time
	Status string
	Source string
}

func blank(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "all")
}

func parseDay(field, v string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(v), loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidFilter, field)
	}
	return &t, nil
}

// ParseFilter reads the query-string form of a filter; dates are calendar days in loc.
func ParseFilter(start, end, status, source string, loc *time.Location) (Filter, error) {
	var f Filter
	var err error
	if f.Start, err = parseDay("start", start, loc); err != nil {
		return Filter{}, err
	}
	if f.End, err = parseDay("end", end, loc); err != nil {
		return Filter{}, err
	}
	if !blank(status) {
		st, ok := entity.ParseOrderStatus(status)
		if !ok {
			return Filter{}, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, status)
		}
		f.Status = string(st)
	}
	if !blank(source) {
		src, ok := entity.ParseOrderSource(source)
		if !ok {
			return Filter{}, fmt.Errorf("%w: unknown source %q", ErrInvalidFilter, source)
		}
		f.Source = string(src)
	}
	return f, nil
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func (f Filter) Match(o entity.Order) bool {
	if f.Start != nil && o.CreatedAt.Before(*f.Start) {
		return false
	}
	if f.End != nil && o.CreatedAt.After(endOfDay(*f.End)) {
		return false
	}
	if !blank(f.Status) && string(o.Status) != strings.ToLower(strings.TrimSpace(f.Status)) {
		return false
	}
	if !blank(f.Source) && string(o.Source) != strings.ToLower(strings.TrimSpace(f.Source)) {
		return false
	}
	return true
}

// Apply keeps the input order.
func Apply(orders []entity.Order, f Filter) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if f.Match(o) {
			out = append(out, o)
		}
	}
	return out
}
