package cli

import (
	"fmt"
	"io"
	"sync"
)

// console serialises writes from the REPL and from timer-driven navigation.
type console struct {
	mu sync.Mutex
	w  io.Writer
}

func (c *console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Write(p)
}

func (c *console) Println(a ...any) {
	fmt.Fprintln(c, a...)
}

func (c *console) Printf(format string, a ...any) {
	fmt.Fprintf(c, format, a...)
}
