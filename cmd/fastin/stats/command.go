package stats

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/brimdata/fastin"
	"github.com/brimdata/fastin/cli/inputflags"
	"github.com/brimdata/fastin/cli/outputflags"
	"github.com/brimdata/fastin/cmd/fastin/root"
	"github.com/brimdata/fastin/pkg/charm"
	"github.com/brimdata/fastin/pkg/display"
	"github.com/brimdata/fastin/pkg/terminal"
	"github.com/dustin/go-humanize"
	"github.com/paulbellamy/ratecounter"
)

var Cmd = &charm.Spec{
	Name:  "stats",
	Usage: "stats [options] [file ...]",
	Short: "count the lines and fields of the input",
	Long: `
The stats command counts the lines, whitespace-separated fields, and bytes
of the concatenated inputs and reports the length of the longest line.
When standard error is a terminal, progress is displayed while the input
is read unless -q is given.`,
	New: New,
}

type Command struct {
	*root.Command
	quiet       bool
	inputFlags  inputflags.Flags
	outputFlags outputflags.Flags

	// status output
	ctx       context.Context
	input     *inputflags.Input
	rate      *ratecounter.RateCounter
	totalRead int64
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.BoolVar(&c.quiet, "q", false, "do not display progress")
	c.inputFlags.SetFlags(f)
	c.outputFlags.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	ctx, r, in, cleanup, err := c.Open(&c.inputFlags, args, &c.outputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	var d *display.Display
	if !c.quiet && terminal.IsTerminalFile(os.Stderr) {
		c.ctx = ctx
		c.input = in
		c.rate = ratecounter.NewRateCounter(time.Second)
		d = display.New(c, time.Second/2, os.Stderr)
		d.Start()
	}
	stats, err := Count(r)
	if d != nil {
		d.Close()
	}
	if err != nil {
		return err
	}
	w, err := c.outputFlags.Open(ctx)
	if err != nil {
		return err
	}
	err = w.Write(stats)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}

// (1.2 MiB/4.0 MiB) 600 KiB/s 30.00%

func (c *Command) Display(w io.Writer) bool {
	read := c.input.BytesRead()
	c.rate.Incr(read - c.totalRead)
	c.totalRead = read
	rate := humanize.IBytes(uint64(c.rate.Rate()))
	if total := c.input.BytesTotal; total > 0 {
		fmt.Fprintf(w, "%s/%s %s/s %.2f%%\n", humanize.IBytes(uint64(read)), humanize.IBytes(uint64(total)), rate, float64(read)/float64(total)*100)
	} else {
		fmt.Fprintf(w, "%s %s/s\n", humanize.IBytes(uint64(read)), rate)
	}
	return c.ctx.Err() == nil
}

type Stats struct {
	Lines   int64 `json:"lines" yaml:"lines"`
	Fields  int64 `json:"fields" yaml:"fields"`
	Bytes   int64 `json:"bytes" yaml:"bytes"`
	MaxLine int   `json:"max_line" yaml:"max_line"`
}

func (s Stats) String() string {
	return fmt.Sprintf("lines %d\nfields %d\nbytes %d (%s)\nmax_line %d",
		s.Lines, s.Fields, s.Bytes, humanize.IBytes(uint64(s.Bytes)), s.MaxLine)
}

func Count(r *fastin.Reader) (Stats, error) {
	var s Stats
	for r.HasNextLine() {
		line := r.NextLine()
		s.Lines++
		if len(line) > s.MaxLine {
			s.MaxLine = len(line)
		}
		f := fastin.NewFields(line)
		for {
			if _, ok := f.Next(); !ok {
				break
			}
			s.Fields++
		}
	}
	s.Bytes = r.Stats().BytesRead
	return s, r.Err()
}
