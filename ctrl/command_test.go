package ctrl

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ftl/gsm-pei/gsm"
)

func TestSetMessageFormat(t *testing.T) {
	assert.Equal(t, "AT+CMGF=0", SetMessageFormat(PDUFormat))
	assert.Equal(t, "AT+CMGF=1", SetMessageFormat(TextFormat))
}

func TestMessageFormatByName(t *testing.T) {
	tt := []struct {
		name     string
		expected MessageFormat
		invalid  bool
	}{
		{name: "PDU", expected: PDUFormat},
		{name: " text\t", expected: TextFormat},
		{name: "binary", invalid: true},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := MessageFormatByName(tc.name)
			if tc.invalid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestRequestMessageFormat(t *testing.T) {
	tt := []struct {
		desc      string
		responses []string
		expected  MessageFormat
		invalid   bool
	}{
		{
			desc:      "pdu format",
			responses: []string{"+CMGF: 0"},
			expected:  PDUFormat,
		},
		{
			desc:      "text format",
			responses: []string{"+CMGF: 1"},
			expected:  TextFormat,
		},
		{
			desc:      "no response",
			responses: []string{},
			invalid:   true,
		},
		{
			desc:      "unexpected response",
			responses: []string{"+CSCA: 1"},
			invalid:   true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			requester := gsm.RequesterFunc(func(_ context.Context, request string) ([]string, error) {
				assert.Equal(t, "AT+CMGF?", request)
				return tc.responses, nil
			})

			actual, err := RequestMessageFormat(context.Background(), requester)

			if tc.invalid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestRequestSignalQuality(t *testing.T) {
	tt := []struct {
		desc      string
		responses []string
		err       error
		expected  SignalQuality
		invalid   bool
	}{
		{
			desc:      "good signal",
			responses: []string{"+CSQ: 23,0"},
			expected:  SignalQuality{RSSI: 23, BitErrorRate: 0},
		},
		{
			desc:      "unknown signal",
			responses: []string{"+CSQ: 99,99"},
			expected:  SignalQuality{RSSI: 99, BitErrorRate: 99},
		},
		{
			desc:      "request failed",
			responses: nil,
			err:       fmt.Errorf("+CME ERROR: 10"),
			invalid:   true,
		},
		{
			desc:      "unexpected response",
			responses: []string{"+CSQ: broken"},
			invalid:   true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			requester := gsm.RequesterFunc(func(_ context.Context, request string) ([]string, error) {
				assert.Equal(t, "AT+CSQ", request)
				return tc.responses, tc.err
			})

			actual, err := RequestSignalQuality(context.Background(), requester)

			if tc.invalid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestSignalQualityDBm(t *testing.T) {
	assert.Equal(t, -113, SignalQuality{RSSI: 0}.DBm())
	assert.Equal(t, -67, SignalQuality{RSSI: 23}.DBm())
	assert.Equal(t, "-67dBm", SignalQuality{RSSI: 23}.String())
	assert.Equal(t, "unknown", SignalQuality{RSSI: 99}.String())
}
