package runtime

import (
	"bufio"
	"io"
)

// Context is the ambient side-channel of spec.md §3: chiefly the
// output sink every Execute call writes through. It carries no
// method-resolution hooks of its own — those live on Class/ClassInstance
// — keeping Context a thin, single-purpose carrier as spec.md §5
// describes ("Context... Passed by mutable reference to every Execute").
type Context struct {
	Output *bufio.Writer
}

// NewContext wraps w in a buffered output sink; written text reaches w
// when the buffer fills or Flush is called.
func NewContext(w io.Writer) *Context {
	return &Context{Output: bufio.NewWriter(w)}
}

// Flush flushes buffered output. The host, not the evaluator, owns
// flushing (spec.md §5: "flushing is the host's responsibility").
func (c *Context) Flush() error {
	return c.Output.Flush()
}
