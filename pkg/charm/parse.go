package charm

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/brimdata/fastin/pkg/suggest"
)

// path is the chain of instantiated commands from the root to the command
// that will run.
type path []*instance

func (p path) last() *instance {
	return p[len(p)-1]
}

func (p path) String() string {
	names := make([]string, 0, len(p))
	for _, inst := range p {
		names = append(names, inst.spec.Name)
	}
	return strings.Join(names, " ")
}

func (p path) run(args []string) error {
	err := p.last().command.Run(args)
	if err != ErrNoRun {
		return err
	}
	subs := p.last().spec.childNames()
	if len(args) == 0 {
		return fmt.Errorf("%q: requires a sub-command: %s", p, strings.Join(subs, " "))
	}
	return fmt.Errorf("%q: no such sub-command %q%s: options are: %s",
		p, args[0], suggest.Hint(args[0], subs), strings.Join(subs, " "))
}

// parse instantiates the command path named by args, parsing each
// command's flags along the way, and returns the path with the arguments
// left over for the last command.
func parse(spec *Spec, args []string) (path, []string, error) {
	return walk(spec, args, true)
}

// parseHelp is like parse but ignores flag errors so that help can be
// shown for a malformed command line.
func parseHelp(spec *Spec, args []string) (path, error) {
	p, _, err := walk(spec, args, false)
	return p, err
}

func walk(spec *Spec, args []string, strict bool) (path, []string, error) {
	var p path
	var parent Command
	for {
		inst, err := newInstance(parent, spec)
		if err != nil {
			return nil, nil, err
		}
		p = append(p, inst)
		rest, err := parseFlags(inst.flags, args)
		if err != nil && strict {
			return p, nil, err
		}
		if len(rest) == 0 {
			return p, rest, nil
		}
		child := spec.lookupSub(rest[0])
		if child == nil {
			return p, rest, nil
		}
		spec, args, parent = child, rest[1:], inst.command
	}
}

func parseFlags(f *flag.FlagSet, args []string) ([]string, error) {
	f.SetOutput(io.Discard)
	if err := f.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, NeedHelp
		}
		return nil, err
	}
	return f.Args(), nil
}
