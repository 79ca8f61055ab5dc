package reading

import (
	"regexp"
	"strconv"
)

// meterReadingPattern matches a run of decimal digits followed by the cubic
// meter unit, e.g. "845 m³" or "845m³".
var meterReadingPattern = regexp.MustCompile(`(\d+)\s*m³`)

// Parse extracts the meter reading from the model's free-text answer. It
// uses the first match only; a text with no match yields ok=false, which is
// a valid outcome rather than an error.
func Parse(text string) (int, bool) {
	m := meterReadingPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return value, true
}
