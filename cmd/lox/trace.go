package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gitlab.com/variadico/lctime"

	"github.com/zephyrtronium/lox"
)

// tracer writes one line per executed statement.
type tracer struct {
	w      io.Writer
	format string
	now    func() time.Time
}

// trace writes a statement with a timestamp, indented by its scope depth.
func (tr *tracer) trace(msg lox.DebugMessage) {
	depth := 0
	if msg.Env != nil {
		depth = msg.Env.Depth() - 1
	}
	ts := lctime.Strftime(tr.format, tr.now())
	fmt.Fprintf(tr.w, "[%s] %s%v\n", ts, strings.Repeat("  ", depth), msg.Stmt)
}

// startTrace installs a Stepper on in that traces each statement to w. The
// returned function stops the tracer; the interpreter must not run any more
// statements after it is called.
func startTrace(in *lox.Interpreter, w io.Writer, format string) (stop func()) {
	tr := &tracer{w: w, format: format, now: time.Now}
	st := lox.NewStepper()
	in.Debug = st.Hook(in.Env())
	done := make(chan struct{})
	go func() {
		for {
			select {
			case msg := <-st.Messages():
				tr.trace(msg)
				close(msg.Done)
			case <-done:
				return
			}
		}
	}()
	return func() {
		close(done)
		in.Debug = nil
	}
}
