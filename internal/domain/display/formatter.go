// Package display renders entity states as localized, unit aware strings.
package display

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"ha-entity-engine/internal/domain/model"
	"ha-entity-engine/internal/ports"
)

// Number format modes besides an explicit BCP-47 tag.
const (
	NumberFormatLanguage = "language"
	NumberFormatNone     = "none"
)

const (
	DefaultDateLayout = "January 2, 2006"
	DefaultTimeLayout = "15:04"
)

type Locale struct {
	Language string
	// NumberFormat is NumberFormatLanguage, NumberFormatNone or a language tag.
	NumberFormat string
	DateLayout   string
	TimeLayout   string
	// Location is used for timestamp sensors. nil keeps the zone of the value.
	Location *time.Location
}

type Options struct {
	// Legacy probes the older state.* catalog keys after the modern key misses.
	Legacy bool
}

type Formatter struct {
	localizer ports.Localizer
	locale    Locale
	opts      Options
	printer   *message.Printer
}

func NewFormatter(localizer ports.Localizer, locale Locale, opts Options) *Formatter {
	if locale.DateLayout == "" {
		locale.DateLayout = DefaultDateLayout
	}
	if locale.TimeLayout == "" {
		locale.TimeLayout = DefaultTimeLayout
	}
	f := &Formatter{localizer: localizer, locale: locale, opts: opts}
	if tag, ok := numberTag(locale); ok {
		f.printer = message.NewPrinter(tag)
	}
	return f
}

func numberTag(locale Locale) (language.Tag, bool) {
	switch locale.NumberFormat {
	case NumberFormatNone:
		return language.Und, false
	case "", NumberFormatLanguage:
		if locale.Language == "" {
			return language.English, true
		}
		tag, err := language.Parse(locale.Language)
		if err != nil {
			return language.English, true
		}
		return tag, true
	}
	tag, err := language.Parse(locale.NumberFormat)
	if err != nil {
		return language.English, true
	}
	return tag, true
}

// FormatEntity formats e using its own domain. It only fails on a malformed entity id.
func (f *Formatter) FormatEntity(e *model.EntityState) (string, error) {
	domain, err := e.Domain()
	if err != nil {
		return "", err
	}
	return f.Format(domain, e.State, e.Attributes), nil
}

// Format returns the display string of state. Misses fall back to the raw state.
func (f *Formatter) Format(domain, state string, attrs model.Attributes) string {
	if model.IsUnavailableState(state) {
		return f.firstOf(state, "state.default."+state)
	}

	if unit := attrs.String("unit_of_measurement"); unit != "" {
		return f.FormatNumber(state) + " " + unit
	}

	switch domain {
	case "input_datetime":
		return f.formatInputDatetime(state, attrs)
	case "sensor", "date", "datetime":
		if s, ok := f.formatTemporal(domain, state, attrs.String("device_class")); ok {
			return s
		}
	}

	deviceClass := attrs.String("device_class")
	modernClass := deviceClass
	if modernClass == "" {
		modernClass = "_"
	}
	keys := []string{"component." + domain + ".state." + modernClass + "." + state}
	if f.opts.Legacy {
		if deviceClass != "" {
			keys = append(keys, "state."+domain+"."+deviceClass+"."+state)
		}
		keys = append(keys,
			"state."+domain+".default."+state,
			"state.default."+state,
			"component."+domain+".state."+state,
		)
	}
	return f.firstOf(state, keys...)
}

// FormatAttributeValue labels one value of a mode attribute such as hvac_mode.
func (f *Formatter) FormatAttributeValue(domain, attribute, value string) string {
	return f.firstOf(value, "component."+domain+".state_attributes."+attribute+".state."+value)
}

// FormatNumber applies locale grouping to a numeric string, keeping its precision.
// Anything that does not parse is returned unchanged.
func (f *Formatter) FormatNumber(value string) string {
	if f.printer == nil {
		return value
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	digits := 0
	if i := strings.IndexByte(value, '.'); i >= 0 {
		digits = len(value) - i - 1
	}
	return f.printer.Sprint(number.Decimal(v, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}

func (f *Formatter) firstOf(fallback string, keys ...string) string {
	if f.localizer == nil {
		return fallback
	}
	for _, key := range keys {
		if s := f.localizer.Localize(key); s != "" {
			return s
		}
	}
	return fallback
}
