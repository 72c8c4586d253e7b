package sms

import (
	"fmt"

	"github.com/ftl/gsm-pei/gsm"
)

// ErrInvalidAddressType indicates a type-of-address octet that is not supported.
var ErrInvalidAddressType = fmt.Errorf("invalid address type: %w", gsm.ErrParse)

// AddressType enum according to [SM] 9.1.2.5
type AddressType byte

// All supported type-of-address octets.
const (
	// International is an international number in the ISDN numbering plan.
	International AddressType = 145
	// ShortCode is a subscriber number in a private numbering plan.
	ShortCode AddressType = 201
)

func decodeAddressType(b byte) (AddressType, error) {
	switch AddressType(b) {
	case International, ShortCode:
		return AddressType(b), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidAddressType, b)
	}
}

// Address represents a phone number or a short code, according to [SM] 9.1.2.5.
type Address struct {
	Type   AddressType
	Number string
}

// NewInternationalAddress returns an address of the given number in the
// international format.
func NewInternationalAddress(number string) Address {
	return Address{
		Type:   International,
		Number: number,
	}
}

func (a Address) String() string {
	if a.Type == International {
		return "+" + a.Number
	}
	return a.Number
}

// parseAddress reads the type-of-address octet and the given number of
// semi-octet encoded digits.
func parseAddress(r *reader, digitCount int) (Address, error) {
	typeOctet, err := r.octet()
	if err != nil {
		return Address{}, err
	}
	addressType, err := decodeAddressType(typeOctet)
	if err != nil {
		return Address{}, err
	}

	number, err := decodeDigits(r, digitCount)
	if err != nil {
		return Address{}, err
	}

	return Address{
		Type:   addressType,
		Number: number,
	}, nil
}

// decodeDigits reads ceil(digitCount/2) octets of nibble-swapped decimal
// digits. The low nibble of each octet holds the earlier digit. A filler
// nibble of 0xF is dropped and never emitted as a digit.
func decodeDigits(r *reader, digitCount int) (string, error) {
	octetCount := digitCount / 2
	if digitCount%2 != 0 {
		octetCount++
	}

	result := make([]byte, 0, digitCount)
	for i := 0; i < octetCount; i++ {
		b, err := r.octet()
		if err != nil {
			return "", err
		}
		result = append(result, digitChar(b&0x0F))
		if b>>4 != 0x0F {
			result = append(result, digitChar(b>>4))
		}
	}
	return string(result), nil
}

func digitChar(nibble byte) byte {
	return "0123456789ABCDEF"[nibble]
}

// appendTo appends the wire representation of this address: the length octet,
// the type-of-address octet, and the nibble-swapped digits. The length octet
// holds the digit count, rounded up to the next even number for odd counts;
// the decoder recognizes the filler nibble by its value, so odd numbers still
// round-trip.
//
// Only international addresses can be encoded.
func (a Address) appendTo(dst []byte) ([]byte, error) {
	if a.Type != International {
		return nil, fmt.Errorf("%w: encoding is only supported for international addresses", ErrInvalidAddressType)
	}

	length := len(a.Number)
	odd := length%2 == 1
	if odd {
		length++
	}
	dst = gsm.AppendOctet(dst, byte(length))
	dst = gsm.AppendOctet(dst, byte(a.Type))

	digits := []byte(a.Number)
	for seen := 0; seen < len(digits); seen += 2 {
		if seen+1 == len(digits) && odd {
			dst = append(dst, 'F')
		} else {
			dst = append(dst, digits[seen+1])
		}
		dst = append(dst, digits[seen])
	}
	return dst, nil
}
