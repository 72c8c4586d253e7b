package gsm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOctetRoundtrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		t.Run(fmt.Sprintf("%02X", i), func(t *testing.T) {
			encoded := AppendOctet(nil, byte(i))
			assert.Len(t, encoded, 2)

			actual, err := DecodeOctet(encoded[0], encoded[1])
			assert.NoError(t, err)
			assert.Equal(t, byte(i), actual)
		})
	}
}

func TestDecodeOctet_CaseInsensitive(t *testing.T) {
	upper, err := DecodeOctet('A', 'F')
	assert.NoError(t, err)
	lower, err := DecodeOctet('a', 'f')
	assert.NoError(t, err)
	assert.Equal(t, upper, lower)
	assert.Equal(t, byte(0xAF), upper)
}

func TestDecodeOctet_MalformedHex(t *testing.T) {
	tt := []struct {
		hi byte
		lo byte
	}{
		{'G', '0'},
		{'0', 'G'},
		{' ', ' '},
		{'-', '1'},
	}
	for _, tc := range tt {
		t.Run(string([]byte{tc.hi, tc.lo}), func(t *testing.T) {
			_, err := DecodeOctet(tc.hi, tc.lo)
			assert.True(t, errors.Is(err, ErrMalformedHex))
			assert.True(t, errors.Is(err, ErrParse))
		})
	}
}

func TestAppendOctet_Uppercase(t *testing.T) {
	assert.Equal(t, []byte("AB"), AppendOctet(nil, 0xAB))
	assert.Equal(t, []byte("0F"), AppendOctet(nil, 0x0F))
}

func TestHexBinaryRoundtrip(t *testing.T) {
	hex := "07911234567890F1040B911234567890F2"

	pdu, err := HexToBinary(hex)
	assert.NoError(t, err)

	actual := BinaryToHex(pdu)
	assert.Equal(t, hex, actual)
}

func TestHexToBinary_IgnoresWhitespace(t *testing.T) {
	pdu, err := HexToBinary("07 91 12\r\n34")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x07, 0x91, 0x12, 0x34}, pdu)
}
