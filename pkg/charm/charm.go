// Package charm is a small command-line framework.  A program is a tree of
// Specs; ExecRoot walks the tree along the command line, instantiating each
// command with its own flag set, and runs the last one.
package charm

import (
	"errors"
	"flag"
	"os"
)

var (
	// NeedHelp may be returned by Run to have help displayed for the
	// command instead of an error.
	NeedHelp = errors.New("help")
	// ErrNoRun is returned by Run from a command that only groups
	// sub-commands.
	ErrNoRun = errors.New("no run method")
)

type Constructor func(Command, *flag.FlagSet) (Command, error)

type Command interface {
	Run([]string) error
}

type Spec struct {
	Name  string
	Usage string
	Short string
	Long  string
	New   Constructor
	// Hidden hides this command from help.
	Hidden bool
	// HiddenFlags is a comma-separated list of flags omitted from help.
	HiddenFlags string
	// Appendix holds sections displayed after the description, e.g., a
	// table of the values a flag accepts.
	Appendix []Section
	children []*Spec
	parent   *Spec
}

// Section is a titled list of lines in a command's help.
type Section struct {
	Heading string
	Lines   []string
}

func (s *Spec) Add(child *Spec) {
	s.children = append(s.children, child)
	child.parent = s
}

func (s *Spec) Root() *Spec {
	for s.parent != nil {
		s = s.parent
	}
	return s
}

func (s *Spec) lookupSub(name string) *Spec {
	for _, child := range s.children {
		if name == child.Name {
			return child
		}
	}
	return nil
}

func (s *Spec) childNames() []string {
	names := make([]string, 0, len(s.children))
	for _, child := range s.children {
		names = append(names, child.Name)
	}
	return names
}

// ExecRoot runs the command named by args.  If the command line asks for
// help or the command returns NeedHelp, help is written to standard error.
func (s *Spec) ExecRoot(args []string) error {
	p, rest, err := parse(s, args)
	if err == nil {
		err = p.run(rest)
	}
	if err != NeedHelp {
		return err
	}
	p, err = parseHelp(s, args)
	if err != nil {
		return err
	}
	newHelpWriter(os.Stderr).command(p, false)
	return nil
}
