//go:build linux

// Package uinputdev creates and drives a virtual /dev/uinput device that
// mirrors the transformed event stream back into the kernel input stack,
// used by cmd/layerz when run against a device path rather than chained
// behind intercept on stdio.
package uinputdev

import (
	"encoding/binary"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/kbdlayer/layerz/event"
	"github.com/kbdlayer/layerz/linux/ioctl"
)

const wireEventSize = 24

// encode renders e as a kernel input_event record with 64-bit timeval
// fields, the wire shape /dev/uinput expects regardless of the core's own
// 32-bit Event representation (see internal/evdevio for the same
// translation on the read side).
func encode(e event.Event) [wireEventSize]byte {
	var buf [wireEventSize]byte

	binary.LittleEndian.PutUint64(buf[0:8], uint64(e.Sec))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(e.Us))
	binary.LittleEndian.PutUint16(buf[16:18], e.Type)
	binary.LittleEndian.PutUint16(buf[18:20], e.Code)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(e.Value))

	return buf
}

// uinput ioctl request codes and the setup/event wire structs, grounded on
// the kernel's linux/uinput.h; golang.org/x/sys/unix does not expose these
// on every supported platform, so they are declared here the way the
// teacher declares its own EVIOC* request codes in linux/input/uapi.go.
const (
	maxNameSize = 80

	uiSetEvBit  = 0x40045564
	uiSetKeyBit = 0x40045565
	uiSetRelBit = 0x40045566
	uiDevCreate = 0x5501
	uiDevDestroy = 0x5502

	busUSB = 0x03
)

var uiDevSetup = ioctl.IOW('U', 3, setupPayload{})

type deviceID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

type setupPayload struct {
	ID        deviceID
	Name      [maxNameSize]byte
	FFEffects uint32
}

// Device is a virtual uinput device accepting EV_KEY and EV_REL events.
type Device struct {
	file *os.File
	fd   uintptr
}

// Create opens /dev/uinput, enables EV_KEY for every keycode in [0,256)
// and EV_REL for the axis codes event.RelX/RelY/RelWheel/RelHWheel/RelDial,
// registers the device under name, and creates it.
func Create(name string) (*Device, error) {
	file, err := os.OpenFile("/dev/uinput", os.O_WRONLY|syscall.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("uinputdev.Create: %w", err)
	}

	dev := &Device{file: file, fd: file.Fd()}

	if err := dev.enableBits(name); err != nil {
		file.Close()
		return nil, fmt.Errorf("uinputdev.Create: %w", err)
	}

	return dev, nil
}

func (dev *Device) enableBits(name string) error {
	// UI_SET_*BIT take the bit number itself as the ioctl argument, not a
	// pointer to it.
	setBit := func(req uintptr, bit int) error {
		if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, dev.fd, req, uintptr(bit)); errno != 0 {
			return errno
		}
		return nil
	}

	if err := setBit(uiSetEvBit, int(event.EvKey)); err != nil {
		return fmt.Errorf("UI_SET_EVBIT(EV_KEY): %w", err)
	}

	for code := range 256 {
		if err := setBit(uiSetKeyBit, code); err != nil {
			return fmt.Errorf("UI_SET_KEYBIT(%d): %w", code, err)
		}
	}

	if err := setBit(uiSetEvBit, int(event.EvRel)); err != nil {
		return fmt.Errorf("UI_SET_EVBIT(EV_REL): %w", err)
	}

	for _, axis := range []uint16{event.RelX, event.RelY, event.RelWheel, event.RelHWheel, event.RelDial} {
		if err := setBit(uiSetRelBit, int(axis)); err != nil {
			return fmt.Errorf("UI_SET_RELBIT(%d): %w", axis, err)
		}
	}

	var setup setupPayload
	setup.ID.Bustype = busUSB
	setup.ID.Vendor = 0x4c61
	setup.ID.Product = 0x7a01
	setup.ID.Version = 1
	copy(setup.Name[:], name)

	if err := ioctl.Any(dev.fd, uiDevSetup, &setup); err != nil {
		return fmt.Errorf("UI_DEV_SETUP: %w", err)
	}

	if err := ioctl.Any(dev.fd, uiDevCreate, intPtr(0)); err != nil {
		return fmt.Errorf("UI_DEV_CREATE: %w", err)
	}

	// udev needs a moment to create the device node before the first
	// Write is guaranteed to succeed.
	time.Sleep(100 * time.Millisecond)

	return nil
}

// WriteEvent writes e to the virtual device, discarding scan events since
// uinput needs only the type/code/value/timestamp the kernel re-derives.
func (dev *Device) WriteEvent(e event.Event) error {
	if e.IsScan() {
		return nil
	}

	buf := encode(e)
	if _, err := dev.file.Write(buf[:]); err != nil {
		return fmt.Errorf("uinputdev.WriteEvent: %w", err)
	}

	return nil
}

// Close destroys the uinput device and closes its file.
func (dev *Device) Close() error {
	if err := ioctl.Any(dev.fd, uiDevDestroy, intPtr(0)); err != nil {
		dev.file.Close()
		return fmt.Errorf("uinputdev.Close: UI_DEV_DESTROY: %w", err)
	}

	if err := dev.file.Close(); err != nil {
		return fmt.Errorf("uinputdev.Close: %w", err)
	}

	return nil
}

func intPtr(v int) *int {
	return &v
}
