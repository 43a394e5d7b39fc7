package head

import (
	"errors"
	"flag"

	"github.com/brimdata/fastin"
	"github.com/brimdata/fastin/cli/inputflags"
	"github.com/brimdata/fastin/cli/outputflags"
	"github.com/brimdata/fastin/cmd/fastin/root"
	"github.com/brimdata/fastin/pkg/charm"
)

var Cmd = &charm.Spec{
	Name:  "head",
	Usage: "head [-n N] [options] [file ...]",
	Short: "print the first lines of the input",
	Long: `
The head command prints the first N lines of the concatenated inputs.
With -n 0, every line is printed.`,
	New: New,
}

type Command struct {
	*root.Command
	n           int
	inputFlags  inputflags.Flags
	outputFlags outputflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.IntVar(&c.n, "n", 10, "number of lines to print (0 for all)")
	c.inputFlags.SetFlags(f)
	c.outputFlags.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	if c.n < 0 {
		return errors.New("head: -n must not be negative")
	}
	ctx, r, _, cleanup, err := c.Open(&c.inputFlags, args, &c.outputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	w, err := c.outputFlags.Open(ctx)
	if err != nil {
		return err
	}
	err = Head(r, c.n, w)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Head writes up to n lines from r to w, or all lines if n is zero.
func Head(r *fastin.Reader, n int, w *outputflags.Writer) error {
	lines := r.Lines()
	for i := 0; n == 0 || i < n; i++ {
		line, ok := lines.Next()
		if !ok {
			break
		}
		if err := w.Write(string(line)); err != nil {
			return err
		}
	}
	return r.Err()
}
