package value

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/argbind/argbind/internal/xmath"
)

type unitKind uint8

const (
	unitMonths = unitKind(iota)
	unitDays
	unitMicroseconds
)

type unit struct {
	kind   unitKind
	factor int64
}

var units = map[string]unit{
	"us":           {unitMicroseconds, 1},
	"usec":         {unitMicroseconds, 1},
	"usecs":        {unitMicroseconds, 1},
	"microsecond":  {unitMicroseconds, 1},
	"microseconds": {unitMicroseconds, 1},
	"ms":           {unitMicroseconds, microsecondsPerMillisecond},
	"msec":         {unitMicroseconds, microsecondsPerMillisecond},
	"msecs":        {unitMicroseconds, microsecondsPerMillisecond},
	"millisecond":  {unitMicroseconds, microsecondsPerMillisecond},
	"milliseconds": {unitMicroseconds, microsecondsPerMillisecond},
	"s":            {unitMicroseconds, microsecondsPerSecond},
	"sec":          {unitMicroseconds, microsecondsPerSecond},
	"secs":         {unitMicroseconds, microsecondsPerSecond},
	"second":       {unitMicroseconds, microsecondsPerSecond},
	"seconds":      {unitMicroseconds, microsecondsPerSecond},
	"m":            {unitMicroseconds, microsecondsPerMinute},
	"min":          {unitMicroseconds, microsecondsPerMinute},
	"mins":         {unitMicroseconds, microsecondsPerMinute},
	"minute":       {unitMicroseconds, microsecondsPerMinute},
	"minutes":      {unitMicroseconds, microsecondsPerMinute},
	"h":            {unitMicroseconds, microsecondsPerHour},
	"hr":           {unitMicroseconds, microsecondsPerHour},
	"hrs":          {unitMicroseconds, microsecondsPerHour},
	"hour":         {unitMicroseconds, microsecondsPerHour},
	"hours":        {unitMicroseconds, microsecondsPerHour},
	"d":            {unitDays, 1},
	"day":          {unitDays, 1},
	"days":         {unitDays, 1},
	"w":            {unitDays, daysPerWeek},
	"week":         {unitDays, daysPerWeek},
	"weeks":        {unitDays, daysPerWeek},
	"mon":          {unitMonths, 1},
	"mons":         {unitMonths, 1},
	"month":        {unitMonths, 1},
	"months":       {unitMonths, 1},
	"y":            {unitMonths, monthsPerYear},
	"yr":           {unitMonths, monthsPerYear},
	"yrs":          {unitMonths, monthsPerYear},
	"year":         {unitMonths, monthsPerYear},
	"years":        {unitMonths, monthsPerYear},
}

// components are accumulated in 64 bits and narrowed only by ParseInterval.
type components struct {
	months, days, us int64
}

type number struct {
	negative bool
	integer  int64
	fraction string
}

// ParseInterval parses interval text: postgres output (`-2 days -03:00:00`),
// verbose output (`@ 1 day 2 hours ago`), ISO-8601 (`P1DT2H`), SQL standard
// (`1 02:00:00`) or plain unit words (`13us`, `5 minutes`). A number without
// unit is seconds and must come last. Fractions finer than a microsecond are rounded.
func ParseInterval(s string) (Interval, error) {
	c, err := parse(s)
	if err != nil {
		return Interval{}, err
	}
	if c.months > math.MaxInt32 || c.months < math.MinInt32 {
		return Interval{}, rangeError("%d months do not fit interval", c.months)
	}
	if c.days > math.MaxInt32 || c.days < math.MinInt32 {
		return Interval{}, rangeError("%d days do not fit interval", c.days)
	}

	return Interval{
		Months:       int32(c.months),
		Days:         int32(c.days),
		Microseconds: c.us,
	}, nil
}

func parse(s string) (components, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return components{}, syntaxError(s, "empty")
	}
	body := strings.TrimLeft(text, "+-")
	if len(body) > 0 && (body[0] == 'P' || body[0] == 'p') && len(text)-len(body) <= 1 {
		return parseISO(s, text)
	}

	return parseWords(s, text)
}

func parseISO(s, text string) (c components, err error) {
	negative := false
	switch text[0] {
	case '-':
		negative = true
		text = text[1:]
	case '+':
		text = text[1:]
	}
	text = text[1:]
	if text == "" {
		return c, syntaxError(s, "no components after P")
	}
	inTime, parts, timeParts := false, 0, 0
	for text != "" {
		if text[0] == 'T' || text[0] == 't' {
			if inTime {
				return c, syntaxError(s, "duplicate T")
			}
			inTime = true
			text = text[1:]

			continue
		}
		if inTime {
			timeParts++
		}
		var n number
		n, text, err = scanNumber(s, text)
		if err != nil {
			return c, err
		}
		if text == "" {
			return c, syntaxError(s, "missing designator")
		}
		var u unit
		switch designator := text[0] | 0x20; {
		case designator == 'y' && !inTime:
			u = units["years"]
		case designator == 'm' && !inTime:
			u = units["months"]
		case designator == 'w' && !inTime:
			u = units["weeks"]
		case designator == 'd' && !inTime:
			u = units["days"]
		case designator == 'h' && inTime:
			u = units["hours"]
		case designator == 'm' && inTime:
			u = units["minutes"]
		case designator == 's' && inTime:
			u = units["seconds"]
		default:
			return c, syntaxError(s, "unknown designator "+strconv.QuoteRune(rune(text[0])))
		}
		text = text[1:]
		if err = c.add(s, n, u); err != nil {
			return c, err
		}
		parts++
	}
	if parts == 0 {
		return c, syntaxError(s, "no components")
	}
	if inTime && timeParts == 0 {
		return c, syntaxError(s, "no components after T")
	}
	if negative {
		return c.neg()
	}

	return c, nil
}

func parseWords(s, text string) (c components, err error) {
	text = strings.TrimPrefix(text, "@")
	ago, parts := false, 0
	for {
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
		if text == "" {
			break
		}
		if ago {
			return c, syntaxError(s, "`ago` must be the last word")
		}
		if word, rest := scanWord(text); strings.EqualFold(word, "ago") {
			ago, text = true, rest

			continue
		}
		var n number
		n, text, err = scanNumber(s, text)
		if err != nil {
			return c, err
		}
		if len(text) > 0 && text[0] == ':' {
			var us int64
			us, text, err = scanClock(s, n, text)
			if err != nil {
				return c, err
			}
			if c.us, err = addMicroseconds(s, c.us, us); err != nil {
				return c, err
			}
			parts++

			continue
		}
		word, rest := scanWord(strings.TrimLeftFunc(text, unicode.IsSpace))
		u, known := units[strings.ToLower(word)]
		switch {
		case word == "" && startsClock(rest):
			// `1 02:00:00` is one day and two hours
			u = units["days"]
		case word == "" && strings.TrimSpace(rest) != "":
			return c, syntaxError(s, "number without unit must be the last component")
		case word == "" || strings.EqualFold(word, "ago"):
			u = units["seconds"]
		case !known:
			return c, syntaxError(s, "unknown unit "+strconv.Quote(word))
		default:
			text = rest
		}
		if err = c.add(s, n, u); err != nil {
			return c, err
		}
		parts++
	}
	if parts == 0 {
		return c, syntaxError(s, "no components")
	}
	if ago {
		return c.neg()
	}

	return c, nil
}

func scanWord(text string) (word, rest string) {
	i := 0
	for i < len(text) && (text[i]|0x20 >= 'a' && text[i]|0x20 <= 'z') {
		i++
	}

	return text[:i], text[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// startsClock reports whether text begins with `[+-]digits:`.
func startsClock(text string) bool {
	if text != "" && (text[0] == '+' || text[0] == '-') {
		text = text[1:]
	}
	digits := strings.TrimLeftFunc(text, func(r rune) bool { return r >= '0' && r <= '9' })

	return len(digits) < len(text) && strings.HasPrefix(digits, ":")
}

// scanNumber reads `[+-]digits[.digits]`.
func scanNumber(s, text string) (n number, rest string, _ error) {
	i := 0
	if i < len(text) && (text[i] == '-' || text[i] == '+') {
		n.negative = text[i] == '-'
		i++
	}
	start := i
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	digits := text[start:i]
	if i < len(text) && text[i] == '.' {
		i++
		fractionStart := i
		for i < len(text) && isDigit(text[i]) {
			i++
		}
		n.fraction = text[fractionStart:i]
	}
	if digits == "" && n.fraction == "" {
		return n, text, syntaxError(s, "expected number at "+strconv.Quote(text))
	}
	if digits != "" {
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return n, text, rangeError("%s does not fit 64 bits", digits)
			}

			return n, text, syntaxError(s, err.Error())
		}
		n.integer = v
	}

	return n, text[i:], nil
}

// scanClock reads the rest of `[+-]H:MM[:SS[.frac]]`, first number is already scanned.
func scanClock(s string, hours number, text string) (us int64, rest string, err error) {
	if hours.fraction != "" {
		return 0, text, syntaxError(s, "fractional hours in time field")
	}
	fields := []number{hours}
	for len(fields) < 3 && len(text) > 0 && text[0] == ':' {
		var n number
		n, text, err = scanNumber(s, text[1:])
		if err != nil {
			return 0, text, err
		}
		if n.negative {
			return 0, text, syntaxError(s, "sign inside time field")
		}
		fields = append(fields, n)
	}
	if fields[1].fraction != "" {
		return 0, text, syntaxError(s, "fractional minutes in time field")
	}
	for _, f := range fields[1:] {
		if f.integer >= 60 {
			return 0, text, syntaxError(s, "minutes and seconds of time field must be below 60")
		}
	}
	factors := []int64{microsecondsPerHour, microsecondsPerMinute, microsecondsPerSecond}
	for i, f := range fields {
		v, err := f.scale(s, factors[i])
		if err != nil {
			return 0, text, err
		}
		// sign of hours applies to every field
		if hours.negative {
			v = -v
		}
		if us, err = addMicroseconds(s, us, v); err != nil {
			return 0, text, err
		}
	}

	return us, text, nil
}

// scale multiplies absolute number by factor rounding the fraction to integer.
func (n number) scale(s string, factor int64) (int64, error) {
	v, ok := xmath.MulExact(n.integer, factor)
	if !ok {
		return 0, rangeError("%d * %d overflows", n.integer, factor)
	}
	if n.fraction == "" {
		return v, nil
	}
	digits := n.fraction[:xmath.Min(len(n.fraction), 9)]
	fraction, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, syntaxError(s, err.Error())
	}
	denominator := int64(math.Pow10(len(digits)))
	v, ok = xmath.AddExact(v, (fraction*factor+denominator/2)/denominator)
	if !ok {
		return 0, rangeError("%d.%s * %d overflows", n.integer, n.fraction, factor)
	}

	return v, nil
}

func (c *components) add(s string, n number, u unit) error {
	if n.fraction != "" && u.kind != unitMicroseconds {
		return syntaxError(s, "fractional months or days are not supported")
	}
	v, err := n.scale(s, u.factor)
	if err != nil {
		return err
	}
	if n.negative {
		v = -v
	}
	var ok bool
	switch u.kind {
	case unitMonths:
		c.months, ok = xmath.AddExact(c.months, v)
	case unitDays:
		c.days, ok = xmath.AddExact(c.days, v)
	default:
		c.us, ok = xmath.AddExact(c.us, v)
	}
	if !ok {
		return rangeError("%s overflows 64-bit component", s)
	}

	return nil
}

func addMicroseconds(s string, a, b int64) (int64, error) {
	sum, ok := xmath.AddExact(a, b)
	if !ok {
		return 0, rangeError("%s overflows microseconds", s)
	}

	return sum, nil
}

func (c components) neg() (components, error) {
	if c.months == math.MinInt64 || c.days == math.MinInt64 || c.us == math.MinInt64 {
		return c, rangeError("negation of %+v overflows", c)
	}

	return components{months: -c.months, days: -c.days, us: -c.us}, nil
}
