// Command layerz-latency measures end-to-end delivery latency through a
// running layerz instance: it writes synthetic key presses to a uinput
// device, reads them back from an evdev device on the other side, and
// reports round-trip percentiles. It has no bearing on the core's own
// semantics; it simply measures the pipeline spec.md's latency-tool
// collaborator is meant to probe.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/kbdlayer/layerz/event"
	"github.com/kbdlayer/layerz/internal/uinputdev"
	"github.com/kbdlayer/layerz/keycode"
	"github.com/kbdlayer/layerz/linux/input"
)

func exitIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "layerz-latency:", err)
		os.Exit(1)
	}
}

func main() {
	samples := flag.Int("samples", 100, "number of round trips to measure")
	key := flag.String("key", "A", "keycode name to probe")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: layerz-latency [-samples N] [-key NAME] <evdev-device-path>")
		os.Exit(2)
	}

	evdevPath := flag.Arg(0)

	dev, err := input.NewDevice(evdevPath)
	exitIf(err)
	defer dev.Close()

	uinput, err := uinputdev.Create("layerz-latency probe")
	exitIf(err)
	defer uinput.Close()

	keyCode, ok := keycode.Resolve(*key)
	if !ok {
		exitIf(fmt.Errorf("unknown keycode %q", *key))
	}

	durations := make([]time.Duration, 0, *samples)
	for range *samples {
		d, err := roundTrip(dev, uinput, keyCode)
		exitIf(err)

		durations = append(durations, d)
	}

	report(durations)
}

// roundTrip writes one press+release pair, followed by a SYN_REPORT that
// makes the kernel deliver them to evdev readers, through uinput and blocks
// reading evdev records until the matching release is observed, returning
// the wall-clock elapsed time.
func roundTrip(dev *input.Device, uinput *uinputdev.Device, code uint16) (time.Duration, error) {
	start := time.Now()

	if err := uinput.WriteEvent(event.Event{Type: event.EvKey, Code: code, Value: event.Press}); err != nil {
		return 0, err
	}

	if err := uinput.WriteEvent(event.Event{Type: event.EvKey, Code: code, Value: event.Release}); err != nil {
		return 0, err
	}

	if err := uinput.WriteEvent(event.Syn(0, 0)); err != nil {
		return 0, err
	}

	buf := make([]byte, 24)

	for {
		if _, err := dev.File().Read(buf); err != nil {
			return 0, err
		}

		evType := uint16(buf[16]) | uint16(buf[17])<<8
		evCode := uint16(buf[18]) | uint16(buf[19])<<8
		evValue := int32(buf[20]) | int32(buf[21])<<8 | int32(buf[22])<<16 | int32(buf[23])<<24

		if evType == event.EvKey && evCode == code && evValue == event.Release {
			return time.Since(start), nil
		}
	}
}

func report(durations []time.Duration) {
	sorted := append([]time.Duration(nil), durations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	percentile := func(p float64) time.Duration {
		idx := int(p * float64(len(sorted)-1))
		return sorted[idx]
	}

	fmt.Printf("samples: %d\n", len(sorted))
	fmt.Printf("p50: %s\n", percentile(0.50))
	fmt.Printf("p90: %s\n", percentile(0.90))
	fmt.Printf("p99: %s\n", percentile(0.99))
}
