// Package stdioprovider implements provider.Provider over stdin/stdout,
// for running layerz chained behind intercept (which owns the real
// device grab and hands layerz a raw input_event stream on its stdin,
// reading the transformed stream back from its stdout).
package stdioprovider

import (
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/kbdlayer/layerz/event"
	"golang.org/x/term"
)

// Provider reads and writes event.Event records directly in the core's
// own 32-bit-timestamp wire layout; unlike internal/evdevio there is no
// kernel ABI to translate, since the upstream intercept process is
// expected to already speak this exact record shape down the pipe.
type Provider struct {
	in     io.Reader
	out    io.Writer
	logger *log.Logger
}

// New wraps os.Stdin/os.Stdout, logging through logger (or log.Default()
// if nil). If stdin is attached to an interactive terminal rather than a
// pipe, a warning is logged — running without intercept in front produces
// a stream of nothing, which is a common first-run mistake, not a fatal
// error.
func New(logger *log.Logger) *Provider {
	if logger == nil {
		logger = log.Default()
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Warn("stdioprovider: stdin is an interactive terminal; layerz expects to be chained behind intercept")
	}

	return &Provider{in: os.Stdin, out: os.Stdout, logger: logger}
}

// ReadEvent reads one wire record from the input stream, ignoring
// timeoutMs: a pipe has no virtual clock, so every read blocks until data
// or end-of-stream arrives. A clean io.EOF (no bytes at all, read between
// records) ends the stream normally; anything else — a short read that
// yields only part of a record, or any other I/O error — is a malformed
// stream or provider failure and aborts the process per the error
// handling design's fatal classes.
func (p *Provider) ReadEvent(timeoutMs uint32) (event.Event, bool) {
	var buf [event.Size]byte

	if _, err := io.ReadFull(p.in, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return event.Event{}, false
		}

		p.logger.Fatal("stdioprovider: read failed", "err", err)
	}

	return event.Event{
		Sec:   binary.LittleEndian.Uint32(buf[0:4]),
		Us:    binary.LittleEndian.Uint32(buf[4:8]),
		Type:  binary.LittleEndian.Uint16(buf[8:10]),
		Code:  binary.LittleEndian.Uint16(buf[10:12]),
		Value: int32(binary.LittleEndian.Uint32(buf[12:16])),
	}, true
}

// WriteEvent writes e to the output stream in the same wire layout. A
// write failure is unrecoverable — the downstream consumer of the
// transformed stream is gone — so it aborts the process rather than
// returning to the core, matching provider.Provider's contract.
func (p *Provider) WriteEvent(e event.Event) {
	var buf [event.Size]byte

	binary.LittleEndian.PutUint32(buf[0:4], e.Sec)
	binary.LittleEndian.PutUint32(buf[4:8], e.Us)
	binary.LittleEndian.PutUint16(buf[8:10], e.Type)
	binary.LittleEndian.PutUint16(buf[10:12], e.Code)
	binary.LittleEndian.PutUint32(buf[12:16], uint32(e.Value))

	if _, err := p.out.Write(buf[:]); err != nil {
		p.logger.Fatal("stdioprovider: write failed", "err", err)
	}
}
