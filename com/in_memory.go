package com

import (
	"io"
	"sync"
	"time"
)

// NewInMemory creates an in-memory stand-in for a serial connection to a
// modem, to be used in tests. Incoming modem traffic is staged with
// PrepareRead, outgoing traffic is inspected with Written.
func NewInMemory() *InMemory {
	return &InMemory{
		writeSignal: make(chan bool),
		closed:      make(chan struct{}),
	}
}

type InMemory struct {
	mutex          sync.Mutex
	readBuffer     []byte
	writeBuffer    []byte
	writeSignal    chan bool
	closed         chan struct{}
	closeWhenEmpty bool
}

func (rw *InMemory) Close() error {
	select {
	case <-rw.closed:
	default:
		close(rw.closed)
	}
	return nil
}

func (rw *InMemory) WaitUntilClosed() {
	<-rw.closed
}

func (rw *InMemory) Read(p []byte) (int, error) {
	for {
		rw.mutex.Lock()
		if len(rw.readBuffer) > 0 {
			break
		}
		rw.mutex.Unlock()
		select {
		case <-rw.closed:
			return 0, io.EOF
		case <-time.After(10 * time.Millisecond):
		}
	}
	defer rw.mutex.Unlock()

	select {
	case <-rw.closed:
		return 0, io.EOF
	default:
	}

	n := copy(p, rw.readBuffer)
	rw.readBuffer = rw.readBuffer[n:]
	if rw.closeWhenEmpty && len(rw.readBuffer) == 0 {
		close(rw.closed)
	}
	return n, nil
}

func (rw *InMemory) PrepareRead(p []byte) {
	rw.mutex.Lock()
	defer rw.mutex.Unlock()

	rw.readBuffer = append(rw.readBuffer, p...)
}

func (rw *InMemory) ClearRead() {
	rw.mutex.Lock()
	defer rw.mutex.Unlock()

	rw.readBuffer = nil

	if rw.closeWhenEmpty {
		close(rw.closed)
	}
}

func (rw *InMemory) IsReadEmpty() bool {
	rw.mutex.Lock()
	defer rw.mutex.Unlock()

	return len(rw.readBuffer) == 0
}

func (rw *InMemory) CloseWhenEmpty(value bool) {
	rw.mutex.Lock()
	defer rw.mutex.Unlock()

	rw.closeWhenEmpty = value
}

func (rw *InMemory) Write(p []byte) (int, error) {
	rw.mutex.Lock()
	defer rw.mutex.Unlock()

	rw.writeBuffer = append(rw.writeBuffer, p...)
	select {
	case rw.writeSignal <- true:
	default:
	}
	return len(p), nil
}

func (rw *InMemory) Written() []byte {
	rw.mutex.Lock()
	defer rw.mutex.Unlock()

	return rw.writeBuffer
}

func (rw *InMemory) ClearWrite() {
	rw.mutex.Lock()
	defer rw.mutex.Unlock()

	rw.writeBuffer = nil
}

func (rw *InMemory) WaitUntilWritten() {
	<-rw.writeSignal
}
