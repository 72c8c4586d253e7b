package ctrl

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ftl/gsm-pei/gsm"
)

// SetMessageFormat according to [CT] 3.2.3
func SetMessageFormat(format MessageFormat) string {
	return fmt.Sprintf("AT+CMGF=%d", format)
}

var requestMessageFormatResponse = regexp.MustCompile(`^\+CMGF: (\d+)$`)

// RequestMessageFormat reads the currently selected message format according to [CT] 3.2.3
func RequestMessageFormat(ctx context.Context, requester gsm.Requester) (MessageFormat, error) {
	responses, err := requester.Request(ctx, "AT+CMGF?")
	if err != nil {
		return 0, err
	}
	if len(responses) < 1 {
		return 0, fmt.Errorf("no response received")
	}
	response := strings.ToUpper(strings.TrimSpace(responses[0]))
	parts := requestMessageFormatResponse.FindStringSubmatch(response)

	if len(parts) != 2 {
		return 0, fmt.Errorf("unexpected response: %s", responses[0])
	}

	result, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}

	return MessageFormat(result), nil
}

// SignalQuality is the radio signal quality as reported by the modem
// according to [CT] 4.6. An RSSI of 99 means not known or not detectable.
type SignalQuality struct {
	RSSI         int
	BitErrorRate int
}

// DBm converts the RSSI value to dBm.
func (q SignalQuality) DBm() int {
	return -113 + 2*q.RSSI
}

func (q SignalQuality) String() string {
	if q.RSSI == 99 {
		return "unknown"
	}
	return fmt.Sprintf("%ddBm", q.DBm())
}

var requestSignalQualityResponse = regexp.MustCompile(`^\+CSQ: (\d+),(\d+)$`)

// RequestSignalQuality reads the current signal quality according to [CT] 4.6
func RequestSignalQuality(ctx context.Context, requester gsm.Requester) (SignalQuality, error) {
	responses, err := requester.Request(ctx, "AT+CSQ")
	if err != nil {
		return SignalQuality{}, err
	}
	if len(responses) < 1 {
		return SignalQuality{}, fmt.Errorf("no response received")
	}
	response := strings.ToUpper(strings.TrimSpace(responses[0]))
	parts := requestSignalQualityResponse.FindStringSubmatch(response)

	if len(parts) != 3 {
		return SignalQuality{}, fmt.Errorf("unexpected response: %s", responses[0])
	}

	rssi, err := strconv.Atoi(parts[1])
	if err != nil {
		return SignalQuality{}, err
	}
	ber, err := strconv.Atoi(parts[2])
	if err != nil {
		return SignalQuality{}, err
	}

	return SignalQuality{RSSI: rssi, BitErrorRate: ber}, nil
}
