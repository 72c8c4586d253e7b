package sms

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ftl/gsm-pei/gsm"
)

const (
	// CRLF line ending for AT commands
	CRLF = "\x0d\x0a"
	// CtrlZ terminates a PDU given to AT+CMGS
	CtrlZ = "\x1a"

	// SwitchToPDUMode selects the PDU message format according to [CT] 3.2.3
	SwitchToPDUMode = "AT+CMGF=0"
	// EnableMessageIndications routes incoming messages directly to the TE
	// as +CMT indications according to [CT] 3.4.1
	EnableMessageIndications = "AT+CNMI=2,2"

	// MessageIndication is the prefix of the unsolicited +CMT response. The
	// PDU follows on the next line.
	MessageIndication = "+CMT:"
)

// SendMessage builds the AT+CMGS command for the given message according to
// [CT] 3.5.1. The length parameter counts the TPDU octets; the PDU itself is
// prefixed with a zero-length service centre address, so the modem uses its
// default service centre.
func SendMessage(message MessageSubmit) (string, error) {
	pdu, err := message.EncodePDU()
	if err != nil {
		return "", err
	}
	tpduOctets := len(pdu) / 2
	return fmt.Sprintf("AT+CMGS=%d"+CRLF+"00%s"+CtrlZ, tpduOctets, pdu), nil
}

var serviceCentreResponse = regexp.MustCompile(`^\+CSCA: "(\+?[0-9]+)",(\d+)$`)

// RequestServiceCentre reads the default service centre address of the modem
// according to [CT] 3.3.1.
func RequestServiceCentre(ctx context.Context, requester gsm.Requester) (Address, error) {
	responses, err := requester.Request(ctx, "AT+CSCA?")
	if err != nil {
		return Address{}, err
	}
	if len(responses) < 1 {
		return Address{}, fmt.Errorf("no response received")
	}
	response := strings.TrimSpace(responses[0])
	parts := serviceCentreResponse.FindStringSubmatch(response)

	if len(parts) != 3 {
		return Address{}, fmt.Errorf("unexpected response: %s", responses[0])
	}

	typeValue, err := strconv.Atoi(parts[2])
	if err != nil {
		return Address{}, err
	}
	addressType, err := decodeAddressType(byte(typeValue))
	if err != nil {
		return Address{}, err
	}

	return Address{
		Type:   addressType,
		Number: strings.TrimPrefix(parts[1], "+"),
	}, nil
}
