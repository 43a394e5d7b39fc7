package pairs

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/brimdata/fastin"
	"github.com/brimdata/fastin/cli/inputflags"
	"github.com/brimdata/fastin/cli/outputflags"
	"github.com/brimdata/fastin/cmd/fastin/root"
	"github.com/brimdata/fastin/pkg/charm"
	"github.com/brimdata/fastin/pkg/terminal"
)

var Cmd = &charm.Spec{
	Name:  "pairs",
	Usage: "pairs [options] [file ...]",
	Short: "collect name and number pairs into a map",
	Long: `
The pairs command reads lines of the form "name number" and prints the
resulting map from name to number.  When a name appears more than once,
the last value wins.  Any fields after the second are ignored.`,
	New: New,
}

type Command struct {
	*root.Command
	inputFlags  inputflags.Flags
	outputFlags outputflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
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
	if in.Stdin && terminal.IsTerminalFile(os.Stdin) {
		fmt.Fprintln(os.Stderr, "Enter name and number pairs (hello 2), end with EOF (Ctrl+D):")
	}
	m, err := Pairs(r)
	if err != nil {
		return err
	}
	w, err := c.outputFlags.Open(ctx)
	if err != nil {
		return err
	}
	err = w.Write(m)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Map prints in text form as one sorted "name number" line per entry.
type Map map[string]int64

func (m Map) String() string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %d", name, m[name])
	}
	return b.String()
}

func Pairs(r *fastin.Reader) (Map, error) {
	m := make(Map)
	for r.HasNextLine() {
		name, val := fastin.Tuple2[fastin.Str, int64](r)
		m[name.String()] = val
	}
	return m, r.Err()
}
