package sms

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ftl/gsm-pei/gsm"
)

// ErrMalformedTimestamp indicates a service centre timestamp that does not
// represent a valid calendar date and time.
var ErrMalformedTimestamp = fmt.Errorf("malformed timestamp: %w", gsm.ErrParse)

// parseTimestamp reads the service centre timestamp according to [SM] 9.2.3.11:
// six nibble-swapped decimal digit pairs for year (2000s), month, day, hour,
// minute and second in the local time of the originating network, followed by
// the timezone as a signed count of quarter hours. The result is converted to
// UTC.
func parseTimestamp(r *reader) (time.Time, error) {
	digits, err := decodeDigits(r, 12)
	if err != nil {
		return time.Time{}, err
	}
	if len(digits) != 12 {
		// a filler nibble in a digit pair was dropped
		return time.Time{}, fmt.Errorf("%w: %s", ErrMalformedTimestamp, digits)
	}

	tzOnes, err := r.char()
	if err != nil {
		return time.Time{}, err
	}
	tzTens, err := r.char()
	if err != nil {
		return time.Time{}, err
	}
	quarterHours := decodeTimezone(tzOnes, tzTens)

	fields := make([]int, 6)
	for i := range fields {
		fields[i], err = strconv.Atoi(digits[i*2 : i*2+2])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrMalformedTimestamp, digits)
		}
	}
	year, month, day := 2000+fields[0], fields[1], fields[2]
	hour, minute, second := fields[3], fields[4], fields[5]
	if month < 1 || month > 12 || day < 1 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMalformedTimestamp, digits)
	}

	location := time.FixedZone("", quarterHours*15*60)
	result := time.Date(year, time.Month(month), day, hour, minute, second, 0, location)
	if result.Day() != day || result.Month() != time.Month(month) {
		// time.Date normalizes out-of-range days instead of failing
		return time.Time{}, fmt.Errorf("%w: %s", ErrMalformedTimestamp, digits)
	}

	return result.UTC(), nil
}

// decodeTimezone decodes the two timezone characters into a signed count of
// quarter hours. The first character holds the ones digit, the second one the
// sign in bit 3 and the tens digit in the remaining bits.
func decodeTimezone(onesChar byte, tensChar byte) int {
	ones := timezoneDigit(onesChar)
	tens := timezoneDigit(tensChar)

	sign := 1
	if tens&0b1000 != 0 {
		tens &= 0b0111
		sign = -1
	}

	return sign * (10*tens + ones)
}

// timezoneDigit maps a timezone character to its value. Characters outside the
// hex alphabet map to 0, no error is raised.
func timezoneDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return 0
	}
}
