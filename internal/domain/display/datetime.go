package display

import (
	"time"

	"ha-entity-engine/internal/domain/model"
)

// Time-only values are placed on this date; only hour and minute are ever read from it.
var referenceDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

func (f *Formatter) formatInputDatetime(state string, attrs model.Attributes) string {
	hasDate := attrs.Bool("has_date")
	hasTime := attrs.Bool("has_time")

	switch {
	case hasDate && hasTime:
		t, ok := dateFromAttrs(attrs, true)
		if !ok {
			return state
		}
		return t.Format(f.locale.DateLayout + ", " + f.locale.TimeLayout)
	case hasDate:
		t, ok := dateFromAttrs(attrs, false)
		if !ok {
			return state
		}
		return t.Format(f.locale.DateLayout)
	case hasTime:
		hour, okH := attrs.Float("hour")
		minute, okM := attrs.Float("minute")
		if !okH || !okM {
			return state
		}
		t := time.Date(referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
			int(hour), int(minute), 0, 0, time.UTC)
		return t.Format(f.locale.TimeLayout)
	}
	return state
}

func dateFromAttrs(attrs model.Attributes, withTime bool) (time.Time, bool) {
	year, okY := attrs.Float("year")
	month, okMo := attrs.Float("month")
	day, okD := attrs.Float("day")
	if !okY || !okMo || !okD {
		return time.Time{}, false
	}
	var hour, minute float64
	if withTime {
		var okH, okM bool
		hour, okH = attrs.Float("hour")
		minute, okM = attrs.Float("minute")
		if !okH || !okM {
			return time.Time{}, false
		}
	}
	return time.Date(int(year), time.Month(int(month)), int(day), int(hour), int(minute), 0, 0, time.UTC), true
}

// formatTemporal handles timestamp and date sensors plus the date/datetime domains.
func (f *Formatter) formatTemporal(domain, state, deviceClass string) (string, bool) {
	switch {
	case domain == "date" || (domain == "sensor" && deviceClass == "date"):
		t, err := time.Parse("2006-01-02", state)
		if err != nil {
			return "", false
		}
		return t.Format(f.locale.DateLayout), true
	case domain == "datetime" || (domain == "sensor" && deviceClass == "timestamp"):
		t, err := time.Parse(time.RFC3339, state)
		if err != nil {
			return "", false
		}
		if f.locale.Location != nil {
			t = t.In(f.locale.Location)
		}
		return t.Format(f.locale.DateLayout + ", " + f.locale.TimeLayout), true
	}
	return "", false
}
