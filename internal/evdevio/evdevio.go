//go:build linux

// Package evdevio implements provider.Provider over a grabbed
// /dev/input/eventN device, translating between the kernel's raw
// input_event wire records and the core's event.Event.
package evdevio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/kbdlayer/layerz/event"
	"github.com/kbdlayer/layerz/linux/input"
)

// wireEvent mirrors the kernel's struct input_event on a 64-bit timeval
// platform: two 8-byte time fields, then type/code/value. golang.org/x/sys
// has no portable struct for this because its layout is platform- and
// kernel-version-dependent, so it is read and written field by field here
// rather than via an unsafe cast.
type wireEvent struct {
	Sec   uint64
	Usec  uint64
	Type  uint16
	Code  uint16
	Value int32
}

const wireEventSize = 24

// Provider reads and writes raw input_event records on a grabbed evdev
// device. The kernel's 64-bit timestamp fields are truncated to the
// core's uint32 Sec/Us on read, and zero-extended back out on write; the
// core only ever compares timestamps within a single bounded run, so
// truncation never affects ordering.
type Provider struct {
	dev    *input.Device
	logger *log.Logger
}

// Open opens, grabs, and wraps the evdev device at path. The device is
// released and closed by Close.
func Open(path string, logger *log.Logger) (*Provider, error) {
	dev, err := input.NewDevice(path)
	if err != nil {
		return nil, fmt.Errorf("evdevio.Open: %w", err)
	}

	if err := dev.Grab(true); err != nil {
		dev.Close()
		return nil, fmt.Errorf("evdevio.Open: %w", err)
	}

	if logger == nil {
		logger = log.Default()
	}

	return &Provider{dev: dev, logger: logger}, nil
}

// ReadEvent blocks until one input_event record is available or the
// device reaches end-of-file, ignoring timeoutMs: a real device has no
// virtual clock to race against, so every read simply blocks on the
// kernel. A clean io.EOF ends the stream normally; a short read
// (io.ErrUnexpectedEOF) or any other I/O error is a malformed record or a
// device failure and aborts the process per the error handling design's
// fatal classes.
func (p *Provider) ReadEvent(timeoutMs uint32) (event.Event, bool) {
	var buf [wireEventSize]byte

	if _, err := io.ReadFull(p.dev.File(), buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return event.Event{}, false
		}

		p.logger.Fatal("evdevio: read failed", "err", err)
	}

	we := decodeWire(buf[:])

	return event.Event{
		Sec:   uint32(we.Sec),
		Us:    uint32(we.Usec),
		Type:  we.Type,
		Code:  we.Code,
		Value: we.Value,
	}, true
}

// WriteEvent writes e as a raw input_event record to the device. A write
// failure is unrecoverable — the downstream kernel/uinput consumer is
// gone — so it aborts the process rather than returning to the core,
// matching provider.Provider's contract.
func (p *Provider) WriteEvent(e event.Event) {
	buf := encodeWire(wireEvent{
		Sec:   uint64(e.Sec),
		Usec:  uint64(e.Us),
		Type:  e.Type,
		Code:  e.Code,
		Value: e.Value,
	})

	if _, err := p.dev.File().Write(buf[:]); err != nil {
		p.logger.Fatal("evdevio: write failed", "err", err)
	}
}

// Close ungrabs and closes the underlying device.
func (p *Provider) Close() error {
	if err := p.dev.Grab(false); err != nil {
		p.logger.Warn("evdevio: ungrab failed", "err", err)
	}

	if err := p.dev.Close(); err != nil {
		return fmt.Errorf("evdevio.Close: %w", err)
	}

	return nil
}

func decodeWire(buf []byte) wireEvent {
	return wireEvent{
		Sec:   binary.LittleEndian.Uint64(buf[0:8]),
		Usec:  binary.LittleEndian.Uint64(buf[8:16]),
		Type:  binary.LittleEndian.Uint16(buf[16:18]),
		Code:  binary.LittleEndian.Uint16(buf[18:20]),
		Value: int32(binary.LittleEndian.Uint32(buf[20:24])),
	}
}

func encodeWire(we wireEvent) [wireEventSize]byte {
	var buf [wireEventSize]byte

	binary.LittleEndian.PutUint64(buf[0:8], we.Sec)
	binary.LittleEndian.PutUint64(buf[8:16], we.Usec)
	binary.LittleEndian.PutUint16(buf[16:18], we.Type)
	binary.LittleEndian.PutUint16(buf[18:20], we.Code)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(we.Value))

	return buf
}
