package sms

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/ftl/gsm-pei/gsm"
)

// ErrUnsupportedEncoding indicates a data coding scheme octet that is not supported.
var ErrUnsupportedEncoding = fmt.Errorf("unsupported data coding scheme: %w", gsm.ErrParse)

// ErrInvalidText indicates user data that is not valid in its declared alphabet.
var ErrInvalidText = fmt.Errorf("invalid text: %w", gsm.ErrParse)

// TextEncoding enum according to the data coding scheme values in [SM] 9.2.3.10
type TextEncoding byte

// All supported text encodings.
const (
	// GSM7Bit is the 7-bit default alphabet, packed into octets.
	GSM7Bit TextEncoding = 0
	// UTF16 is the UCS-2 alphabet, decoded here as big-endian UTF-16.
	UTF16 TextEncoding = 8
	// UnknownEncoding marks user data whose alphabet could not be determined.
	UnknownEncoding TextEncoding = 0xFF
)

func decodeDataCodingScheme(b byte) (TextEncoding, error) {
	switch TextEncoding(b) {
	case GSM7Bit, UTF16:
		return TextEncoding(b), nil
	default:
		return UnknownEncoding, fmt.Errorf("%w: %d", ErrUnsupportedEncoding, b)
	}
}

// gsm7Masks selects the low bits of an octet that belong to the character at
// the given step in the 8-character packing cycle.
var gsm7Masks = [8]byte{
	0b01111111, // 1
	0b00111111, // 2
	0b00011111, // 3
	0b00001111, // 4
	0b00000111, // 5
	0b00000011, // 6
	0b00000001, // 7
	0b11111111, // 0
}

// gsm7Alphabet maps a septet value to its character according to [SM] annex 2,
// without the extension table.
var gsm7Alphabet = [128]rune{
	//   0     1     2     3     4     5     6     7     8     9     A     B     C     D     E     F
	'@', '£', '$', '¥', 'è', 'é', 'ù', 'ì', 'ò', 'Ç', '\n', 'Ø', 'ø', '\r', 'Å', 'å', // 0
	'Δ', '_', 'Φ', 'Γ', 'Λ', 'Ω', 'Π', 'Ψ', 'Σ', 'Θ', 'Ξ', '?', 'Æ', 'æ', 'ß', 'É', // 1
	' ', '!', '"', '#', '¤', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', // 2
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?', // 3
	'¡', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', // 4
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'Ä', 'Ö', 'Ñ', 'Ü', '§', // 5
	'¿', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', // 6
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'ä', 'ö', 'ñ', 'ü', 'à', // 7
}

// decodeGSM7 reads count characters of packed 7-bit text. Eight characters
// occupy seven octets; the bits of a septet that spill over an octet boundary
// are carried into the next character. At step 7 of the cycle the carry alone
// holds a complete septet and no octet is consumed.
func decodeGSM7(r *reader, count int) (string, error) {
	var result strings.Builder
	var carry byte
	for i := 0; i < count; i++ {
		step := i % 8
		if step == 7 {
			result.WriteRune(gsm7Alphabet[carry])
			carry = 0
			continue
		}

		b, err := r.octet()
		if err != nil {
			return "", err
		}
		septet := ((b & gsm7Masks[step]) << step) | carry
		result.WriteRune(gsm7Alphabet[septet])
		carry = (b &^ gsm7Masks[step]) >> (7 - step)
	}
	return result.String(), nil
}

var utf16Codec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// decodeUTF16 reads the given number of octets and interprets them as
// big-endian 16-bit code units.
func decodeUTF16(r *reader, octetCount int) (string, error) {
	raw, err := r.octets(octetCount)
	if err != nil {
		return "", err
	}
	raw = raw[:len(raw)-len(raw)%2]

	if !validUTF16(raw) {
		return "", fmt.Errorf("%w: unpaired surrogate", ErrInvalidText)
	}

	decoded, err := utf16Codec.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidText, err)
	}
	return string(decoded), nil
}

// validUTF16 reports whether the big-endian code unit sequence contains only
// correctly paired surrogates.
func validUTF16(raw []byte) bool {
	unitAt := func(i int) uint16 {
		return uint16(raw[i])<<8 | uint16(raw[i+1])
	}
	for i := 0; i+1 < len(raw); i += 2 {
		unit := unitAt(i)
		switch {
		case unit >= 0xD800 && unit < 0xDC00: // high surrogate
			if i+3 >= len(raw) {
				return false
			}
			next := unitAt(i + 2)
			if next < 0xDC00 || next >= 0xE000 {
				return false
			}
			i += 2
		case unit >= 0xDC00 && unit < 0xE000: // low surrogate without a high one
			return false
		}
	}
	return true
}

// appendUTF16UserData appends the length octet followed by the text as
// big-endian 16-bit code units. The length octet holds the byte count of the
// encoded text, not the character count.
func appendUTF16UserData(dst []byte, text string) ([]byte, error) {
	encoded, err := utf16Codec.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidText, err)
	}
	if len(encoded) > 255 {
		return nil, fmt.Errorf("user data too long: %d bytes", len(encoded))
	}

	dst = gsm.AppendOctet(dst, byte(len(encoded)))
	for _, b := range encoded {
		dst = gsm.AppendOctet(dst, b)
	}
	return dst, nil
}
