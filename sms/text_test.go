package sms

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ftl/gsm-pei/gsm"
)

func TestDecodeGSM7(t *testing.T) {
	tt := []struct {
		desc     string
		pduHex   string
		count    int
		expected string
	}{
		{
			desc:     "full 8 character group in 7 octets",
			pduHex:   "E8329BFD46A743",
			count:    8,
			expected: "hellohi!",
		},
		{
			desc:     "five characters",
			pduHex:   "E8329BFD46",
			count:    5,
			expected: "hello",
		},
		{
			desc:     "single character",
			pduHex:   "68",
			count:    1,
			expected: "h",
		},
		{
			desc:     "empty",
			pduHex:   "",
			count:    0,
			expected: "",
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := decodeGSM7(newReader(tc.pduHex), tc.count)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestDecodeGSM7_Incomplete(t *testing.T) {
	_, err := decodeGSM7(newReader("E832"), 8)
	assert.True(t, errors.Is(err, gsm.ErrIncomplete))
}

func TestUTF16Roundtrip(t *testing.T) {
	tt := []struct {
		desc          string
		text          string
		expectedBytes int
	}{
		{
			desc:          "plain ASCII",
			text:          "Hi!",
			expectedBytes: 6,
		},
		{
			desc:          "non-latin characters",
			text:          "日本語",
			expectedBytes: 6,
		},
		{
			desc:          "surrogate pair",
			text:          "\U0001F600",
			expectedBytes: 4,
		},
		{
			desc:          "empty",
			text:          "",
			expectedBytes: 0,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			encoded, err := appendUTF16UserData(nil, tc.text)
			assert.NoError(t, err)

			r := newReader(string(encoded))
			length, err := r.octet()
			assert.NoError(t, err)
			assert.Equal(t, byte(tc.expectedBytes), length)

			actual, err := decodeUTF16(r, int(length))
			assert.NoError(t, err)
			assert.Equal(t, tc.text, actual)
		})
	}
}

func TestDecodeUTF16_InvalidText(t *testing.T) {
	tt := []struct {
		desc   string
		pduHex string
	}{
		{
			desc:   "unpaired high surrogate",
			pduHex: "D800",
		},
		{
			desc:   "high surrogate followed by a regular unit",
			pduHex: "D8000048",
		},
		{
			desc:   "lone low surrogate",
			pduHex: "DC00",
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := decodeUTF16(newReader(tc.pduHex), len(tc.pduHex)/2)
			assert.True(t, errors.Is(err, ErrInvalidText))
			assert.True(t, errors.Is(err, gsm.ErrParse))
		})
	}
}

func TestDecodeUTF16_Incomplete(t *testing.T) {
	_, err := decodeUTF16(newReader("0048"), 4)
	assert.True(t, errors.Is(err, gsm.ErrIncomplete))
}

func TestDecodeDataCodingScheme(t *testing.T) {
	tt := []struct {
		value    byte
		expected TextEncoding
		invalid  bool
	}{
		{value: 0, expected: GSM7Bit},
		{value: 8, expected: UTF16},
		{value: 1, invalid: true},
		{value: 4, invalid: true},
		{value: 0xF6, invalid: true},
	}
	for _, tc := range tt {
		t.Run(fmt.Sprintf("%d", tc.value), func(t *testing.T) {
			actual, err := decodeDataCodingScheme(tc.value)
			if tc.invalid {
				assert.True(t, errors.Is(err, ErrUnsupportedEncoding))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}
