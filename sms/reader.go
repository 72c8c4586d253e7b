package sms

import (
	"github.com/ftl/gsm-pei/gsm"
)

// reader consumes the ASCII hex representation of a PDU strictly from left to
// right. Every field of the PDU is decoded from successive slices of the same
// buffer; the reader never backtracks.
type reader struct {
	buf []byte
	pos int
}

func newReader(pduHex string) *reader {
	return &reader{buf: []byte(pduHex)}
}

// octet consumes the next two hex characters and returns the octet they
// represent. It returns gsm.ErrIncomplete if less than two characters remain.
func (r *reader) octet() (byte, error) {
	if r.pos+2 > len(r.buf) {
		return 0, gsm.ErrIncomplete
	}
	result, err := gsm.DecodeOctet(r.buf[r.pos], r.buf[r.pos+1])
	if err != nil {
		return 0, err
	}
	r.pos += 2
	return result, nil
}

// octets consumes the next n octets.
func (r *reader) octets(n int) ([]byte, error) {
	result := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b, err := r.octet()
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}

// char consumes one raw character, without interpreting it as a hex digit.
// The timezone field of the timestamp is the only user of this.
func (r *reader) char() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, gsm.ErrIncomplete
	}
	result := r.buf[r.pos]
	r.pos++
	return result, nil
}

// consumedOctets returns the number of octets consumed so far.
func (r *reader) consumedOctets() int {
	return r.pos / 2
}
