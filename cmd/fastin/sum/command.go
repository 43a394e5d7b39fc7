package sum

import (
	"flag"
	"fmt"

	"github.com/brimdata/fastin"
	"github.com/brimdata/fastin/cli/inputflags"
	"github.com/brimdata/fastin/cli/outputflags"
	"github.com/brimdata/fastin/cmd/fastin/root"
	"github.com/brimdata/fastin/pkg/charm"
)

var Cmd = &charm.Spec{
	Name:  "sum",
	Usage: "sum [-t int|float] [options] [file ...]",
	Short: "sum the numbers on each line",
	Long: `
The sum command prints, for each input line, the sum of the numbers on
that line.  With -t int (the default), numbers are parsed as 64-bit signed
integers and overflow wraps.  With -t float, they are parsed as 64-bit
floating point.`,
	New: New,
}

type Command struct {
	*root.Command
	typ         string
	inputFlags  inputflags.Flags
	outputFlags outputflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.StringVar(&c.typ, "t", "int", "type of the numbers [int,float]")
	c.inputFlags.SetFlags(f)
	c.outputFlags.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	var sum func(*fastin.Reader, *outputflags.Writer) error
	switch c.typ {
	case "int":
		sum = Sum[int64]
	case "float":
		sum = Sum[float64]
	default:
		return fmt.Errorf("sum: unknown type %q", c.typ)
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
	err = sum(r, w)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Sum writes the sum of the values on each line of r to w.
func Sum[T int64 | float64](r *fastin.Reader, w *outputflags.Writer) error {
	for r.HasNextLine() {
		var total T
		it := fastin.Iter[T](r)
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			total += v
		}
		if err := w.Write(total); err != nil {
			return err
		}
	}
	return r.Err()
}
