// Package ctxio wraps readers and writers so that an in-progress scan of
// the input can be aborted by canceling a context.Context.  Cancellation
// takes effect at the next Read or Write call.
package ctxio

import (
	"context"
	"io"
)

type reader struct {
	io.Reader
	ctx context.Context
}

func NewReader(ctx context.Context, r io.Reader) io.Reader {
	return &reader{r, ctx}
}

func (r *reader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.Reader.Read(p)
}

type writer struct {
	io.Writer
	ctx context.Context
}

func NewWriter(ctx context.Context, w io.Writer) io.Writer {
	return &writer{w, ctx}
}

func (w *writer) Write(p []byte) (int, error) {
	if err := w.ctx.Err(); err != nil {
		return 0, err
	}
	return w.Writer.Write(p)
}
