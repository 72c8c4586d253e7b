package sms

import (
	"errors"
	"fmt"

	"github.com/ftl/gsm-pei/gsm"
)

// ErrUnsupportedFeature indicates a combination of message options that this
// implementation cannot encode. It is a recoverable error, not a parse failure.
var ErrUnsupportedFeature = errors.New("unsupported feature")

// ValidityPeriodFormat enum according to the TP-VPF bits, see [SM] 9.2.3.3
type ValidityPeriodFormat byte

// All validity period formats.
const (
	ValidityPeriodNotPresent ValidityPeriodFormat = 0b00
	ValidityPeriodEnhanced   ValidityPeriodFormat = 0b01
	ValidityPeriodRelative   ValidityPeriodFormat = 0b10
	ValidityPeriodAbsolute   ValidityPeriodFormat = 0b11
)

// ValidityPeriod is the lifetime policy of a submitted message before the
// network may discard it undelivered, see [SM] 9.2.3.12.
type ValidityPeriod struct {
	Format ValidityPeriodFormat
	// Relative is the encoded quarter-hour count, only meaningful for the
	// relative format.
	Relative byte
}

// RelativeValidityPeriod returns a validity period in the relative format with
// the given encoded value.
func RelativeValidityPeriod(value byte) ValidityPeriod {
	return ValidityPeriod{
		Format:   ValidityPeriodRelative,
		Relative: value,
	}
}

// MaximumValidityPeriod is the longest relative validity period (value 255).
// It is the only validity period the encoder supports.
var MaximumValidityPeriod = RelativeValidityPeriod(255)

// MessageSubmit represents an outgoing message that can be encoded into an
// SMS-SUBMIT PDU, according to [SM] 9.2.2.2.
type MessageSubmit struct {
	commandInfo      CommandInfo
	rejectDuplicates bool
	messageReference byte
	destination      Address
	protocolID       byte
	validityPeriod   ValidityPeriod
	userData         UserData
}

// NewMessageSubmit validates the given options and returns a message ready for
// encoding. It fails with ErrUnsupportedFeature if the validity period is not
// the maximum relative period, if a status report is requested, if a reply path
// is requested, if the user data does not use the UTF-16 alphabet, or if the
// user data carries a header.
func NewMessageSubmit(rejectDuplicates bool, validityPeriod ValidityPeriod, statusReportRequest bool, replyPath bool, destination Address, protocolID byte, userData UserData) (MessageSubmit, error) {
	if validityPeriod != MaximumValidityPeriod {
		return MessageSubmit{}, fmt.Errorf("%w: only the maximum relative validity period can be encoded", ErrUnsupportedFeature)
	}
	if statusReportRequest {
		return MessageSubmit{}, fmt.Errorf("%w: status reports cannot be requested", ErrUnsupportedFeature)
	}
	if replyPath {
		return MessageSubmit{}, fmt.Errorf("%w: reply paths are not supported", ErrUnsupportedFeature)
	}
	if userData.Encoding != UTF16 {
		return MessageSubmit{}, fmt.Errorf("%w: outgoing messages must use the UTF-16 alphabet", ErrUnsupportedFeature)
	}
	if userData.Header != nil {
		return MessageSubmit{}, fmt.Errorf("%w: user data headers cannot be encoded", ErrUnsupportedFeature)
	}

	return MessageSubmit{
		commandInfo: CommandInfo{
			MessageType:       SMSSubmit,
			MoreMessages:      false,
			HasUserDataHeader: false,
		},
		rejectDuplicates: rejectDuplicates,
		messageReference: 0, // the modem allocates the reference itself
		destination:      destination,
		protocolID:       protocolID,
		validityPeriod:   validityPeriod,
		userData:         userData,
	}, nil
}

// NewDefaultMessageSubmit returns a plain mobile originated message with the
// maximum validity period and protocol identifier 0.
func NewDefaultMessageSubmit(rejectDuplicates bool, destination Address, userData UserData) (MessageSubmit, error) {
	return NewMessageSubmit(rejectDuplicates, MaximumValidityPeriod, false, false, destination, 0, userData)
}

// Destination returns the destination address of this message.
func (m MessageSubmit) Destination() Address {
	return m.destination
}

// EncodePDU encodes this message into the ASCII hex representation of its
// SMS-SUBMIT PDU.
//
// The first octet carries the following bits:
//
//	0-1  TP-MTI, 01 for SMS-SUBMIT
//	2    TP-RD, reject duplicates
//	3-4  TP-VPF, 10 for the relative format
//	5    TP-SRR, always 0
//	6    TP-UDHI, always 0
//	7    TP-RP, always 0
func (m MessageSubmit) EncodePDU() (string, error) {
	firstOctet := byte(0b00_01_00_01)
	if m.rejectDuplicates {
		firstOctet |= 0b1 << 2
	}

	dst := make([]byte, 0, 64)
	dst = gsm.AppendOctet(dst, firstOctet)
	dst = gsm.AppendOctet(dst, m.messageReference)

	dst, err := m.destination.appendTo(dst)
	if err != nil {
		return "", err
	}

	dst = gsm.AppendOctet(dst, m.protocolID)
	dst = gsm.AppendOctet(dst, byte(UTF16))
	dst = gsm.AppendOctet(dst, m.validityPeriod.Relative)

	dst, err = appendUTF16UserData(dst, m.userData.Text)
	if err != nil {
		return "", err
	}

	return string(dst), nil
}
