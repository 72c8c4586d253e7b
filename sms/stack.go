package sms

import (
	"fmt"
	"time"
)

// Message is a complete text message as presented to the application, possibly
// reassembled from several concatenated parts.
type Message struct {
	Reference byte
	Sender    Address
	Timestamp time.Time
	parts     []part
}

func NewMessage(reference byte, sender Address, timestamp time.Time, parts int) Message {
	return Message{
		Reference: reference,
		Sender:    sender,
		Timestamp: timestamp,
		parts:     make([]part, parts),
	}
}

func (m Message) Complete() bool {
	for _, part := range m.parts {
		if !part.Valid {
			return false
		}
	}
	return true
}

func (m Message) Text() string {
	var result string
	for _, part := range m.parts {
		if part.Valid {
			result += part.Text
		} else if result != "" {
			result += "..."
		}
	}
	return result
}

func (m Message) String() string {
	return fmt.Sprintf("Message 0x%x from %s at %s:\n%s",
		m.Reference, m.Sender, m.Timestamp.Format(time.RFC3339), m.Text())
}

// SetPart stores the text of the 1-based part i.
func (m *Message) SetPart(i int, text string) {
	i -= 1
	if i < 0 || i >= len(m.parts) {
		return
	}

	m.parts[i].Text = text
	m.parts[i].Valid = true
}

type part struct {
	Valid bool
	Text  string
}

type MessageCallback func(Message)

// Stack collects delivered messages and reassembles concatenated parts. A
// message is handed to the callback as soon as all of its parts arrived;
// single-part messages are handed over immediately.
type Stack struct {
	messageCallback MessageCallback
	pendingMessages map[byte]Message
}

func NewStack() *Stack {
	return &Stack{
		pendingMessages: make(map[byte]Message),
	}
}

func (s *Stack) WithMessageCallback(callback MessageCallback) *Stack {
	s.messageCallback = callback
	return s
}

// Put feeds one delivered message into the stack.
func (s *Stack) Put(delivered DeliveredMessage) error {
	var concatenated *ConcatenatedMessage
	if delivered.UserData.Header != nil {
		concatenated = delivered.UserData.Header.ConcatenatedMessage
	}

	// a part count of zero cannot be assembled, deliver the part on its own
	if concatenated == nil || concatenated.TotalNumber == 0 {
		if s.messageCallback == nil {
			return nil
		}
		message := NewMessage(0, delivered.Sender, delivered.Timestamp, 1)
		message.SetPart(1, delivered.UserData.Text)
		s.messageCallback(message)
		return nil
	}

	message, ok := s.pendingMessages[concatenated.ReferenceNumber]
	if !ok {
		message = NewMessage(
			concatenated.ReferenceNumber,
			delivered.Sender,
			delivered.Timestamp,
			int(concatenated.TotalNumber),
		)
	} else if message.Sender != delivered.Sender ||
		len(message.parts) != int(concatenated.TotalNumber) {
		return fmt.Errorf("part does not match message 0x%x: %s != %s | %d != %d",
			message.Reference, message.Sender, delivered.Sender, len(message.parts), concatenated.TotalNumber)
	}
	message.SetPart(int(concatenated.SequenceNumber), delivered.UserData.Text)

	if message.Complete() && s.messageCallback != nil {
		s.messageCallback(message)
		delete(s.pendingMessages, message.Reference)
	} else {
		s.pendingMessages[message.Reference] = message
	}

	return nil
}
