package charm

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brimdata/fastin/pkg/suggest"
	"github.com/brimdata/fastin/pkg/terminal"
	"github.com/kr/text"
)

var Help = &Spec{
	Name:  "help",
	Usage: "help [-v] [command ...]",
	Short: "display help for a command",
	Long: `
With no arguments, help describes the top-level command.  Otherwise it
describes the sub-command named by its arguments, e.g., "help fields".`,
	HiddenFlags: "v",
	New: func(parent Command, f *flag.FlagSet) (Command, error) {
		c := &HelpCommand{}
		f.BoolVar(&c.all, "v", false, "show hidden commands and flags")
		return c, nil
	},
}

type HelpCommand struct {
	all bool
}

func (c *HelpCommand) Run(args []string) error {
	p, err := lookup(Help.Root(), args)
	if err != nil {
		return err
	}
	newHelpWriter(os.Stderr).command(p, c.all)
	return nil
}

// lookup instantiates the commands named by args without parsing any
// flags.
func lookup(root *Spec, args []string) (path, error) {
	inst, err := newInstance(nil, root)
	if err != nil {
		return nil, err
	}
	p := path{inst}
	for i, name := range args {
		spec := p.last().spec
		child := spec.lookupSub(name)
		if child == nil {
			return nil, fmt.Errorf("no such command: %s%s",
				strings.Join(args[:i+1], " "), suggest.Hint(name, spec.childNames()))
		}
		inst, err := newInstance(p.last().command, child)
		if err != nil {
			return nil, err
		}
		p = append(p, inst)
	}
	return p, nil
}

const indent = "    "

type helpWriter struct {
	w     io.Writer
	width int
	bold  bool
}

// newHelpWriter formats for w, wrapping to the terminal width and using
// bold headings when w is a terminal.
func newHelpWriter(w io.Writer) *helpWriter {
	hw := &helpWriter{w: w, width: 80}
	if f, ok := w.(*os.File); ok && terminal.IsTerminalFile(f) {
		hw.width = terminal.Width(f)
		hw.bold = true
	}
	return hw
}

func (h *helpWriter) heading(s string) {
	if h.bold {
		s = "\033[1m" + s + "\033[0m"
	}
	fmt.Fprintln(h.w, s)
}

func (h *helpWriter) list(heading string, lines []string) {
	if len(lines) == 0 {
		return
	}
	h.heading(heading)
	for _, line := range lines {
		if line == "" {
			fmt.Fprintln(h.w)
			continue
		}
		fmt.Fprintln(h.w, indent+line)
	}
	fmt.Fprintln(h.w)
}

// paragraphs writes body with each blank-line-separated paragraph wrapped
// to the writer's width.
func (h *helpWriter) paragraphs(heading, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	h.heading(heading)
	width := h.width - len(indent) - 5
	for i, para := range strings.Split(body, "\n\n") {
		if i > 0 {
			fmt.Fprintln(h.w)
		}
		para = text.Wrap(strings.Join(strings.Fields(para), " "), width)
		fmt.Fprint(h.w, text.Indent(para, indent), "\n")
	}
	fmt.Fprintln(h.w)
}

func (h *helpWriter) command(p path, all bool) {
	spec := p.last().spec
	h.list("NAME", []string{spec.Name + " - " + spec.Short})
	h.list("USAGE", []string{spec.Usage})
	options := flagSections(p, all)
	if len(options) == 0 {
		options = []string{"no flags for this command"}
	}
	h.list("OPTIONS", options)
	h.list("COMMANDS", subcommands(spec, all))
	h.paragraphs("DESCRIPTION", spec.Long)
	for _, s := range spec.Appendix {
		h.list(s.Heading, s.Lines)
	}
}

// flagSections lists the flags of the last command of p followed by those
// of each ancestor under a "[name flags]" label.
func flagSections(p path, all bool) []string {
	lines := p.last().options(all)
	for i := len(p) - 2; i >= 0; i-- {
		options := p[i].options(all)
		if len(options) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "["+p[:i+1].String()+" flags]")
		lines = append(lines, options...)
	}
	return lines
}

func subcommands(spec *Spec, all bool) []string {
	var lines []string
	for _, child := range spec.children {
		name := child.Name
		if child.Hidden {
			if !all {
				continue
			}
			name = "[" + name + "]"
		}
		lines = append(lines, name+" - "+child.Short)
	}
	return lines
}
