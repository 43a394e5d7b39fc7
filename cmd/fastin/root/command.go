package root

import (
	"context"
	"flag"

	"github.com/brimdata/fastin"
	"github.com/brimdata/fastin/cli"
	"github.com/brimdata/fastin/cli/inputflags"
	"github.com/brimdata/fastin/pkg/charm"
	"go.uber.org/zap"
)

var Fastin = &charm.Spec{
	Name:  "fastin",
	Usage: "fastin <command> [options] [file ...]",
	Short: "read and parse line-oriented input",
	Long: `
fastin reads newline-delimited text from files or standard input ("-")
and parses the whitespace-separated fields of each line.  Input is assumed
to be well formed: malformed numbers are not reported and produce
unspecified values.`,
	New: New,
}

type Command struct {
	charm.Command
	cli.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) == 0 {
		return charm.NeedHelp
	}
	return charm.ErrNoRun
}

// Open initializes the flags and opens the inputs named by paths.  The
// returned cleanup function closes the inputs and must be called when the
// command is done.
func (c *Command) Open(inputFlags *inputflags.Flags, paths []string, all ...cli.Initializer) (context.Context, *fastin.Reader, *inputflags.Input, func(), error) {
	all = append(all, inputFlags)
	ctx, cancel, err := c.Init(all...)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	in, err := inputFlags.Open(ctx, paths)
	if err != nil {
		cancel()
		return nil, nil, nil, nil, err
	}
	c.Logger.Debug("opened input",
		zap.Strings("paths", paths),
		zap.Int64("bytes", in.BytesTotal),
		zap.Int("bufsize", inputFlags.BufferSize))
	r := inputFlags.NewReader(in)
	cleanup := func() {
		s := r.Stats()
		c.Logger.Debug("input done",
			zap.Int64("lines", s.Lines),
			zap.Int64("bytes", s.BytesRead),
			zap.Int64("reads", s.Reads))
		if err := in.Close(); err != nil {
			c.Logger.Warn("closing input", zap.Error(err))
		}
		cancel()
	}
	return ctx, r, in, cleanup, nil
}
