package outputflags

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/brimdata/fastin/pkg/ctxio"
	"gopkg.in/yaml.v3"
)

type Flags struct {
	DefaultFormat string
	Format        string
	outputFile    string
	jsonShortcut  bool
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	if f.DefaultFormat == "" {
		f.DefaultFormat = "text"
	}
	fs.StringVar(&f.Format, "f", f.DefaultFormat, "format for output data [text,json,yaml]")
	fs.BoolVar(&f.jsonShortcut, "j", false, "use line-oriented JSON output independent of -f option")
	fs.StringVar(&f.outputFile, "o", "", "write data to output file")
}

func (f *Flags) Init() error {
	if f.jsonShortcut {
		if f.Format != f.DefaultFormat && f.Format != "json" {
			return fmt.Errorf("cannot use -j with -f %s", f.Format)
		}
		f.Format = "json"
	}
	switch f.Format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format: %s", f.Format)
}

// Open returns a Writer for the output file, or standard output if none
// was given.
func (f *Flags) Open(ctx context.Context) (*Writer, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer
	if f.outputFile != "" {
		file, err := os.Create(f.outputFile)
		if err != nil {
			return nil, err
		}
		w, closer = file, file
	}
	return NewWriter(ctxio.NewWriter(ctx, w), closer, f.Format), nil
}

// Writer writes values in the selected format.  With the text format,
// values are written with fmt.Println so types control their rendering
// with a String method.
type Writer struct {
	buf    *bufio.Writer
	closer io.Closer
	format string
	json   *json.Encoder
	yaml   *yaml.Encoder
}

func NewWriter(w io.Writer, closer io.Closer, format string) *Writer {
	buf := bufio.NewWriter(w)
	writer := &Writer{buf: buf, closer: closer, format: format}
	switch format {
	case "json":
		writer.json = json.NewEncoder(buf)
	case "yaml":
		writer.yaml = yaml.NewEncoder(buf)
		writer.yaml.SetIndent(2)
	}
	return writer
}

func (w *Writer) Write(v interface{}) error {
	switch {
	case w.json != nil:
		return w.json.Encode(v)
	case w.yaml != nil:
		return w.yaml.Encode(v)
	}
	_, err := fmt.Fprintln(w.buf, v)
	return err
}

func (w *Writer) Close() error {
	var err error
	if w.yaml != nil {
		err = w.yaml.Close()
	}
	if flushErr := w.buf.Flush(); err == nil {
		err = flushErr
	}
	if w.closer != nil {
		if closeErr := w.closer.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}
