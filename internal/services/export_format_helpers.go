package services

import (
	"sort"
	"strconv"
)

func sortedDateKeys(keys []string) []string {
	ordered := make([]string, 0, len(keys))
	ordered = append(ordered, keys...)
	sort.Strings(ordered)
	return ordered
}

func csvYesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func csvInt(value int) string {
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value)
}

func csvOptionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func csvFloat(value float64) string {
	if value == 0 {
		return ""
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
