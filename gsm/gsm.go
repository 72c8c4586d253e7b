package gsm

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParse is the common kind of all hard parse failures. Every specific parse
// error in this module matches ErrParse through errors.Is.
var ErrParse = errors.New("parse error")

// ErrIncomplete indicates that a field required more input than was left in the
// buffer. This is a separate outcome from ErrParse: the input is not malformed,
// it is just not complete yet.
var ErrIncomplete = errors.New("incomplete input")

// ErrMalformedHex indicates a character that is not a hex digit.
var ErrMalformedHex = fmt.Errorf("malformed hex digit: %w", ErrParse)

// DecodeOctet decodes one octet from its two-character ASCII hex
// representation. Both upper and lower case digits are accepted.
func DecodeOctet(hi byte, lo byte) (byte, error) {
	h, ok := nibbleValue(hi)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHex, string(hi))
	}
	l, ok := nibbleValue(lo)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHex, string(lo))
	}
	return h<<4 | l, nil
}

// AppendOctet appends the two-character ASCII hex representation of the given
// octet, high nibble first, using uppercase digits.
func AppendOctet(dst []byte, b byte) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0x0F])
}

const hexDigits = "0123456789ABCDEF"

func nibbleValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

var hexSanitizer = regexp.MustCompile(`\s+`)

// HexToBinary converts the hex representation used along the modem interface
// for binary data into a slice of bytes.
func HexToBinary(s string) ([]byte, error) {
	sanitized := hexSanitizer.ReplaceAllString(s, "")
	result, err := hex.DecodeString(sanitized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return result, nil
}

// BinaryToHex converts a slice of bytes into the hex representation used along
// the modem interface for binary data.
func BinaryToHex(pdu []byte) string {
	return strings.ToUpper(hex.EncodeToString(pdu))
}

// Requester issues a single AT request and returns the response lines.
type Requester interface {
	Request(context.Context, string) ([]string, error)
}

// RequesterFunc wraps a plain function into the Requester interface.
type RequesterFunc func(context.Context, string) ([]string, error)

func (f RequesterFunc) Request(ctx context.Context, request string) ([]string, error) {
	return f(ctx, request)
}
