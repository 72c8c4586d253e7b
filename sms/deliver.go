package sms

import (
	"fmt"
	"time"

	"github.com/ftl/gsm-pei/gsm"
)

// ErrUnsupportedMessageType indicates a message type that cannot be decoded.
var ErrUnsupportedMessageType = fmt.Errorf("unsupported message type: %w", gsm.ErrParse)

// MessageType enum according to the TP-MTI bits, see [SM] 9.2.3.1
type MessageType byte

// All message types in the direction SC to MS.
const (
	SMSDeliver MessageType = 0
	SMSSubmit  MessageType = 1
	SMSCommand MessageType = 2
)

// CommandInfo holds the flags of the first octet of a PDU, see [SM] 9.2.3.
type CommandInfo struct {
	MessageType       MessageType
	MoreMessages      bool
	HasUserDataHeader bool
}

// decodeCommandInfo derives the command information purely from the first
// octet: the message type from bits 0-1, TP-MMS from bit 2 (0 means more
// messages to send), and TP-UDHI from bit 6.
func decodeCommandInfo(b byte) CommandInfo {
	var messageType MessageType
	switch b & 0b11 {
	case 0, 1:
		messageType = SMSDeliver
	case 2:
		messageType = SMSSubmit
	case 3:
		messageType = SMSCommand
	}

	return CommandInfo{
		MessageType:       messageType,
		MoreMessages:      (b & 0b100) == 0,
		HasUserDataHeader: (b & 0b1000000) != 0,
	}
}

// UserData is the message body: the decoded text, its alphabet, and the
// optional user data header.
type UserData struct {
	Encoding TextEncoding
	Text     string
	Header   *UserDataHeader
}

// NewUTF16UserData returns user data carrying the given text in the
// UCS-2/UTF-16 alphabet, without a header.
func NewUTF16UserData(text string) UserData {
	return UserData{
		Encoding: UTF16,
		Text:     text,
	}
}

// parseUserData reads the message body: the user data header if the command
// information flags one, then the text in the given alphabet. The octets
// consumed by the header are subtracted from the user data length before the
// text is decoded.
func parseUserData(r *reader, encoding TextEncoding, length int, hasHeader bool) (UserData, error) {
	var header *UserDataHeader
	var err error

	headerStart := r.consumedOctets()
	if hasHeader {
		header, err = parseUserDataHeader(r)
		if err != nil {
			return UserData{}, err
		}
	}
	remaining := length - (r.consumedOctets() - headerStart)
	if remaining < 0 {
		return UserData{}, fmt.Errorf("user data length %d is smaller than its header: %w", length, gsm.ErrParse)
	}

	var text string
	switch encoding {
	case GSM7Bit:
		text, err = decodeGSM7(r, remaining)
	case UTF16:
		text, err = decodeUTF16(r, remaining)
	default:
		return UserData{}, fmt.Errorf("%w: %d", ErrUnsupportedEncoding, encoding)
	}
	if err != nil {
		return UserData{}, err
	}

	return UserData{
		Encoding: encoding,
		Text:     text,
		Header:   header,
	}, nil
}

// DeliveredMessage represents a decoded SMS-DELIVER PDU, according to [SM] 9.2.2.1.
type DeliveredMessage struct {
	ServiceCentre Address
	CommandInfo   CommandInfo
	Sender        Address
	ProtocolID    byte
	Timestamp     time.Time
	UserData      UserData
}

// ParseDeliveredMessage decodes an SMS-DELIVER PDU from its ASCII hex
// representation, in strict field order: service centre address, first octet,
// sender address, protocol identifier, data coding scheme, service centre
// timestamp, and user data.
//
// The service centre length octet counts octets (including the type-of-address
// octet), the sender length octet counts digits. This asymmetry is part of the
// wire format, see [SM] 9.1.2.5.
func ParseDeliveredMessage(pduHex string) (DeliveredMessage, error) {
	r := newReader(pduHex)

	scLength, err := r.octet()
	if err != nil {
		return DeliveredMessage{}, err
	}
	if scLength < 1 {
		return DeliveredMessage{}, fmt.Errorf("invalid service centre length %d: %w", scLength, gsm.ErrParse)
	}
	serviceCentre, err := parseAddress(r, (int(scLength)-1)*2)
	if err != nil {
		return DeliveredMessage{}, err
	}

	firstOctet, err := r.octet()
	if err != nil {
		return DeliveredMessage{}, err
	}
	commandInfo := decodeCommandInfo(firstOctet)
	if commandInfo.MessageType != SMSDeliver {
		return DeliveredMessage{}, fmt.Errorf("%w: 0x%x", ErrUnsupportedMessageType, firstOctet&0b11)
	}

	senderDigits, err := r.octet()
	if err != nil {
		return DeliveredMessage{}, err
	}
	sender, err := parseAddress(r, int(senderDigits))
	if err != nil {
		return DeliveredMessage{}, err
	}

	protocolID, err := r.octet()
	if err != nil {
		return DeliveredMessage{}, err
	}

	dcs, err := r.octet()
	if err != nil {
		return DeliveredMessage{}, err
	}
	encoding, err := decodeDataCodingScheme(dcs)
	if err != nil {
		return DeliveredMessage{}, err
	}

	timestamp, err := parseTimestamp(r)
	if err != nil {
		return DeliveredMessage{}, err
	}

	udLength, err := r.octet()
	if err != nil {
		return DeliveredMessage{}, err
	}
	userData, err := parseUserData(r, encoding, int(udLength), commandInfo.HasUserDataHeader)
	if err != nil {
		return DeliveredMessage{}, err
	}

	return DeliveredMessage{
		ServiceCentre: serviceCentre,
		CommandInfo:   commandInfo,
		Sender:        sender,
		ProtocolID:    protocolID,
		Timestamp:     timestamp,
		UserData:      userData,
	}, nil
}
