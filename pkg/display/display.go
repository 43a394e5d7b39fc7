// Package display periodically redraws a status line on a terminal.
package display

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/gosuri/uilive"
)

type Displayer interface {
	// Display writes the current status to w and returns false when
	// no further updates are wanted.
	Display(w io.Writer) bool
}

type Display struct {
	live     *uilive.Writer
	interval time.Duration
	updater  Displayer
	buffer   *bytes.Buffer
	close    chan struct{}
	once     sync.Once
	done     sync.WaitGroup
}

func New(updater Displayer, interval time.Duration, w io.Writer) *Display {
	live := uilive.New()
	live.Out = w
	return &Display{
		live:     live,
		interval: interval,
		updater:  updater,
		buffer:   bytes.NewBuffer(nil),
		close:    make(chan struct{}),
	}
}

func (d *Display) update() bool {
	d.buffer.Reset()
	cont := d.updater.Display(d.buffer)
	// Ignore any errors.
	_, _ = io.Copy(d.live, d.buffer)
	_ = d.live.Flush()
	return cont
}

// Start redraws the display every interval in a separate goroutine until
// Close is called or the Displayer asks to stop.
func (d *Display) Start() {
	d.done.Add(1)
	go d.run()
}

func (d *Display) run() {
	defer d.done.Done()
	for {
		if !d.update() {
			return
		}
		select {
		case <-d.close:
			return
		case <-time.After(d.interval):
		}
	}
}

// Close stops Run and draws the final status.
func (d *Display) Close() {
	d.once.Do(func() { close(d.close) })
	d.done.Wait()
	d.update()
}
