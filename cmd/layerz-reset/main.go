// Command layerz-reset forces EVIOCGRAB(0) on a device a crashed layerz
// process left grabbed, restoring normal event delivery to the rest of
// the input stack. Intended to be invoked from a layout's Hook action or
// run by hand after a crash.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kbdlayer/layerz/linux/input"
)

func exitIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "layerz-reset:", err)
		os.Exit(1)
	}
}

func main() {
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		path = defaultDevicePath()
	}

	dev, err := input.NewDevice(path)
	exitIf(err)
	defer dev.Close()

	exitIf(dev.Grab(false))

	fmt.Println("layerz-reset: ungrabbed", path)
}

// defaultDevicePath reads LAYERZ_DEVICE, the environment variable a Hook
// action's exec.Command invocation sets so the reset utility knows which
// device its parent had grabbed without needing it on the command line.
func defaultDevicePath() string {
	return os.Getenv("LAYERZ_DEVICE")
}
