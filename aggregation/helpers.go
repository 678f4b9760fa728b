package aggregation

import (
	"strings"
	"time"

	"gemtrade/model"
)

type typeGroup struct {
	Type  string
	Items []model.InventoryItem
}

// groupByType groups items by exact type string, in first-seen order.
func groupByType(inventory []model.InventoryItem) []typeGroup {
	index := make(map[string]int)
	var groups []typeGroup
	for _, item := range inventory {
		i, ok := index[item.Type]
		if !ok {
			i = len(groups)
			index[item.Type] = i
			groups = append(groups, typeGroup{Type: item.Type})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return sq / float64(len(values))
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate reads the date formats the forms submit. Date-only values are
// interpreted in loc.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
