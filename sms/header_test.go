package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserDataHeader(t *testing.T) {
	tt := []struct {
		desc     string
		pduHex   string
		expected *UserDataHeader
	}{
		{
			desc:   "concatenated message element followed by an unknown element",
			pduHex: "0900030703020502ABCD",
			expected: &UserDataHeader{
				ConcatenatedMessage: &ConcatenatedMessage{
					ReferenceNumber: 7,
					TotalNumber:     3,
					SequenceNumber:  2,
				},
				Entries: []HeaderElement{
					{Tag: 0x00, Data: []byte{0x07, 0x03, 0x02}},
					{Tag: 0x05, Data: []byte{0xAB, 0xCD}},
				},
			},
		},
		{
			desc:   "unknown element only",
			pduHex: "040502ABCD",
			expected: &UserDataHeader{
				Entries: []HeaderElement{
					{Tag: 0x05, Data: []byte{0xAB, 0xCD}},
				},
			},
		},
		{
			desc:   "malformed concatenated message element is retained raw",
			pduHex: "0400020703",
			expected: &UserDataHeader{
				Entries: []HeaderElement{
					{Tag: 0x00, Data: []byte{0x07, 0x03}},
				},
			},
		},
		{
			desc:     "empty header",
			pduHex:   "00",
			expected: &UserDataHeader{},
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := parseUserDataHeader(newReader(tc.pduHex))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestUserDataHeaderRoundtrip(t *testing.T) {
	pduHex := "0900030703020502ABCD"

	header, err := parseUserDataHeader(newReader(pduHex))
	assert.NoError(t, err)

	actual := header.appendTo(nil)
	assert.Equal(t, pduHex, string(actual))
}

func TestUserDataHeader_Length(t *testing.T) {
	header, err := parseUserDataHeader(newReader("0900030703020502ABCD"))
	assert.NoError(t, err)
	assert.Equal(t, 10, header.Length())
}

func TestParseUserDataHeader_FirstConcatenatedElementWins(t *testing.T) {
	header, err := parseUserDataHeader(newReader("0A00030703020003080401"))
	assert.NoError(t, err)
	assert.Equal(t, &ConcatenatedMessage{ReferenceNumber: 7, TotalNumber: 3, SequenceNumber: 2}, header.ConcatenatedMessage)
	assert.Len(t, header.Entries, 2)
}
