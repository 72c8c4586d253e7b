package serial

import (
	"errors"
	"io"

	"github.com/jacobsa/go-serial/serial"

	"github.com/ftl/gsm-pei/com"
)

var (
	NoModemFound = errors.New("no GSM modem device found")
)

type SerialDevice struct {
	Description string
	Filename    string
}

func Open(portName string) (*com.COM, error) {
	device, err := openSerial(portName)
	if err != nil {
		return nil, err
	}

	return com.New(device), nil
}

func OpenWithTrace(portName string, traceWriter io.Writer) (*com.COM, error) {
	device, err := openSerial(portName)
	if err != nil {
		return nil, err
	}

	return com.NewWithTrace(device, traceWriter), nil
}

func openSerial(portName string) (io.ReadWriteCloser, error) {
	portConfig := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              115200,
		DataBits:              8,
		StopBits:              1,
		ParityMode:            serial.PARITY_NONE,
		RTSCTSFlowControl:     true,
		MinimumReadSize:       4,
		InterCharacterTimeout: 100,
	}

	return serial.Open(portConfig)
}
