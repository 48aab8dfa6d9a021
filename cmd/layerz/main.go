// Command layerz runs the layered key-event transformer against either a
// raw evdev device or, with no arguments, stdin/stdout chained behind
// intercept.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/kbdlayer/layerz/event"
	"github.com/kbdlayer/layerz/internal/config"
	"github.com/kbdlayer/layerz/internal/dump"
	"github.com/kbdlayer/layerz/internal/evdevio"
	"github.com/kbdlayer/layerz/internal/stdioprovider"
	"github.com/kbdlayer/layerz/internal/uinputdev"
	"github.com/kbdlayer/layerz/keyboard"
	"github.com/kbdlayer/layerz/provider"
	"golang.org/x/sync/errgroup"
)

func exitIf(logger *log.Logger, err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

func main() {
	var (
		dumpLayout  bool
		configPath  string
		logger      *log.Logger
		cfg         config.Config
		err         error
	)

	flag.BoolVar(&dumpLayout, "dump-layout", false, "print the compiled layout and exit")
	flag.StringVar(&configPath, "config", "", "path to the optional process config file")
	flag.Parse()

	cfg, err = config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "layerz:", err)
		os.Exit(1)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	logger.SetLevel(parseLevel(cfg.LogLevel))

	if dumpLayout {
		dump.Write(os.Stdout, compiledLayout, dump.IsTerminalFile(os.Stdout.Fd()))
		return
	}

	devicePath := cfg.Device
	if flag.NArg() > 0 {
		devicePath = flag.Arg(0)
	}

	if devicePath == "" {
		runStdio(logger)
		return
	}

	runDevice(logger, devicePath)
}

func parseLevel(name string) log.Level {
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}

	return level
}

// runStdio drives the core over stdin/stdout, for the intercept-chained
// deployment.
func runStdio(logger *log.Logger) {
	p := stdioprovider.New(logger)

	kb, err := keyboard.New(compiledLayout, p, keyboard.WithLogger(logger))
	exitIf(logger, err)

	kb.Loop()
}

// runDevice grabs the evdev device at path, mirrors the transformed stream
// onto a uinput virtual device, and runs the core between them until a
// signal requests shutdown or the device closes.
func runDevice(logger *log.Logger, path string) {
	grabbedDevicePath = path

	evdev, err := evdevio.Open(path, logger)
	exitIf(logger, err)
	defer evdev.Close()

	uinput, err := uinputdev.Create("layerz virtual keyboard")
	exitIf(logger, err)
	defer uinput.Close()

	p := &mirrorProvider{read: evdev, write: uinput, logger: logger}

	kb, err := keyboard.New(compiledLayout, p, keyboard.WithLogger(logger))
	exitIf(logger, err)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		kb.Loop()
		cancel()
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		return evdev.Close()
	})

	if err := group.Wait(); err != nil {
		logger.Warn("layerz: shutdown error", "err", err)
	}
}

// mirrorProvider is provider.Provider: reads come from the grabbed evdev
// device, writes go to the uinput mirror.
type mirrorProvider struct {
	read   *evdevio.Provider
	write  *uinputdev.Device
	logger *log.Logger
}

func (p *mirrorProvider) ReadEvent(timeoutMs uint32) (event.Event, bool) {
	return p.read.ReadEvent(timeoutMs)
}

func (p *mirrorProvider) WriteEvent(e event.Event) {
	if err := p.write.WriteEvent(e); err != nil {
		p.logger.Fatal("layerz: uinput write failed", "err", err)
	}
}

var _ provider.Provider = (*mirrorProvider)(nil)
