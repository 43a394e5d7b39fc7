package fields

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/brimdata/fastin"
	"github.com/brimdata/fastin/cli/inputflags"
	"github.com/brimdata/fastin/cli/outputflags"
	"github.com/brimdata/fastin/cmd/fastin/root"
	"github.com/brimdata/fastin/pkg/charm"
	"github.com/x448/float16"
)

const MaxFields = 5

var Cmd = &charm.Spec{
	Name:  "fields",
	Usage: "fields -k kind[,kind...] [options] [file ...]",
	Short: "parse the leading fields of each line",
	Long: `
The fields command parses the first one to five whitespace-separated fields
of each line according to the comma-separated list of kinds given by -k and
prints each line as a record.

Each kind may be given by its short name or by any of its aliases, as
listed under KINDS.  Fields missing from a line are printed as zero values.`,
	New:      New,
	Appendix: []charm.Section{{Heading: "KINDS", Lines: KindTable()}},
}

// KindTable lists each kind's short name followed by its aliases.
func KindTable() []string {
	var lines []string
	for _, k := range fastin.Kinds() {
		line := fmt.Sprintf("%-4s %s", k, strings.Join(k.Aliases(), ", "))
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

type Command struct {
	*root.Command
	kindsFlag   string
	kinds       []fastin.Kind
	inputFlags  inputflags.Flags
	outputFlags outputflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.StringVar(&c.kindsFlag, "k", "str", "comma-separated kinds of the leading fields")
	c.inputFlags.SetFlags(f)
	c.outputFlags.SetFlags(f)
	return c, nil
}

func (c *Command) Init() error {
	kinds, err := ParseKinds(c.kindsFlag)
	if err != nil {
		return err
	}
	c.kinds = kinds
	return nil
}

func (c *Command) Run(args []string) error {
	ctx, r, _, cleanup, err := c.Open(&c.inputFlags, args, c, &c.outputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	w, err := c.outputFlags.Open(ctx)
	if err != nil {
		return err
	}
	err = Fields(r, c.kinds, w)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}

// ParseKinds is fastin.ParseKinds limited to MaxFields kinds.
func ParseKinds(s string) ([]fastin.Kind, error) {
	if s == "" {
		return nil, errors.New("-k: no kinds specified")
	}
	kinds, err := fastin.ParseKinds(s)
	if err != nil {
		return nil, fmt.Errorf("-k: %w", err)
	}
	if len(kinds) > MaxFields {
		return nil, fmt.Errorf("-k: at most %d kinds may be specified", MaxFields)
	}
	return kinds, nil
}

// Record prints in text form as its values separated by spaces.
type Record []interface{}

func (r Record) String() string {
	vals := make([]string, len(r))
	for i, v := range r {
		vals[i] = fmt.Sprint(v)
	}
	return strings.Join(vals, " ")
}

// Fields parses each line of r according to kinds and writes a Record per
// line to w.
func Fields(r *fastin.Reader, kinds []fastin.Kind, w *outputflags.Writer) error {
	rec := make(Record, len(kinds))
	for r.HasNextLine() {
		f := r.NextFields()
		for i, k := range kinds {
			rec[i] = export(fastin.ParseKind(f.Token(), k))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return r.Err()
}

// export converts values that alias the input or that lack a useful
// encoding into plain Go values.
func export(v interface{}) interface{} {
	switch v := v.(type) {
	case fastin.Str:
		return v.String()
	case float16.Float16:
		return v.Float32()
	}
	return v
}
