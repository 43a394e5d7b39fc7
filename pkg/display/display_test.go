package display

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	mu    sync.Mutex
	calls int
	limit int
}

func (c *counter) Display(w io.Writer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	fmt.Fprintf(w, "update %d\n", c.calls)
	return c.calls < c.limit
}

func TestDisplayStopsWhenDone(t *testing.T) {
	var out bytes.Buffer
	c := &counter{limit: 3}
	d := New(c, time.Millisecond, &out)
	d.Start()
	assert.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.calls >= 3
	}, time.Second, time.Millisecond)
	d.Close()
	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, 4, c.calls)
	assert.True(t, strings.Contains(out.String(), "update 4"))
}
