package sms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ftl/gsm-pei/gsm"
)

func TestSendMessage(t *testing.T) {
	message, err := NewDefaultMessageSubmit(false, NewInternationalAddress("1234"), NewUTF16UserData("Hi!"))
	assert.NoError(t, err)

	actual, err := SendMessage(message)
	assert.NoError(t, err)

	expected := "AT+CMGS=16\x0d\x0a001100049121430008FF06004800690021\x1a"
	assert.Equal(t, expected, actual)
}

func TestSendMessage_LengthCountsTPDUOctets(t *testing.T) {
	message, err := NewDefaultMessageSubmit(false, NewInternationalAddress("491701234567"), NewUTF16UserData(""))
	assert.NoError(t, err)

	actual, err := SendMessage(message)
	assert.NoError(t, err)

	// 13 octets of headers and an empty user data block with its length octet
	assert.Contains(t, actual, "AT+CMGS=14\x0d\x0a")
}

func TestRequestServiceCentre(t *testing.T) {
	tt := []struct {
		desc     string
		response []string
		expected Address
		invalid  bool
	}{
		{
			desc:    "empty",
			invalid: true,
		},
		{
			desc:     "happy path",
			response: []string{`+CSCA: "+491710760000",145`},
			expected: Address{Type: International, Number: "491710760000"},
		},
		{
			desc:     "unexpected response",
			response: []string{"+CSCA: ?"},
			invalid:  true,
		},
		{
			desc:     "unsupported address type",
			response: []string{`+CSCA: "+491710760000",129`},
			invalid:  true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			requester := func(_ context.Context, _ string) ([]string, error) {
				return tc.response, nil
			}
			actual, err := RequestServiceCentre(context.Background(), gsm.RequesterFunc(requester))
			if tc.invalid {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}
