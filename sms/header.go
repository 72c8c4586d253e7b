package sms

import (
	"log"

	"github.com/ftl/gsm-pei/gsm"
)

// ConcatenatedMessageElement is the information element identifier for
// concatenated short messages with a short reference, according to [SM] 9.2.3.24.
const ConcatenatedMessageElement byte = 0x00

// HeaderElement is one information element of a user data header: a tag octet,
// a length octet, and the raw payload. Elements with unknown tags are retained
// verbatim.
type HeaderElement struct {
	Tag  byte
	Data []byte
}

// ConcatenatedMessage carries the linkage information of one part of a
// concatenated short message.
type ConcatenatedMessage struct {
	ReferenceNumber byte
	TotalNumber     byte
	SequenceNumber  byte
}

// UserDataHeader represents the optional header of the user data, according to
// [SM] 9.2.3.24. Entries holds all information elements in their original
// order, so the header can always be re-encoded verbatim, independent of which
// tags were specially interpreted.
type UserDataHeader struct {
	ConcatenatedMessage *ConcatenatedMessage
	Entries             []HeaderElement
}

// parseUserDataHeader reads the header length octet and all information
// elements it covers. An element that overruns the header boundary is
// discarded, together with the remainder of the header.
func parseUserDataHeader(r *reader) (*UserDataHeader, error) {
	length, err := r.octet()
	if err != nil {
		return nil, err
	}
	raw, err := r.octets(int(length))
	if err != nil {
		return nil, err
	}

	result := &UserDataHeader{}
	for pos := 0; pos+2 <= len(raw); {
		tag := raw[pos]
		dataLength := int(raw[pos+1])
		pos += 2
		if pos+dataLength > len(raw) {
			log.Printf("discarding header element 0x%x: %d payload octets overrun the header boundary", tag, dataLength)
			break
		}
		data := make([]byte, dataLength)
		copy(data, raw[pos:pos+dataLength])
		pos += dataLength

		result.Entries = append(result.Entries, HeaderElement{Tag: tag, Data: data})
	}
	result.decodeEntries()

	return result, nil
}

// decodeEntries interprets the known information elements. All entries stay in
// the retained list, a malformed payload of a known tag is only logged.
func (h *UserDataHeader) decodeEntries() {
	for _, entry := range h.Entries {
		if entry.Tag != ConcatenatedMessageElement {
			continue
		}
		if len(entry.Data) != 3 {
			log.Printf("ignoring malformed concatenated message element with %d payload octets", len(entry.Data))
			continue
		}
		if h.ConcatenatedMessage != nil {
			continue
		}
		h.ConcatenatedMessage = &ConcatenatedMessage{
			ReferenceNumber: entry.Data[0],
			TotalNumber:     entry.Data[1],
			SequenceNumber:  entry.Data[2],
		}
	}
}

// Length returns the octet count of this header on the wire, including the
// length octet itself.
func (h UserDataHeader) Length() int {
	result := 1
	for _, entry := range h.Entries {
		result += 2 + len(entry.Data)
	}
	return result
}

// appendTo appends the wire representation of this header, rebuilt from the
// retained entries.
func (h UserDataHeader) appendTo(dst []byte) []byte {
	dst = gsm.AppendOctet(dst, byte(h.Length()-1))
	for _, entry := range h.Entries {
		dst = gsm.AppendOctet(dst, entry.Tag)
		dst = gsm.AppendOctet(dst, byte(len(entry.Data)))
		for _, b := range entry.Data {
			dst = gsm.AppendOctet(dst, b)
		}
	}
	return dst
}
