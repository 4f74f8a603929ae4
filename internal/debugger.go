package internal

// Stepper is a Debug hook that hands each statement to another goroutine and
// waits for it to be handled before the statement executes.
type Stepper struct {
	// msgs is the queue of statements to process.
	msgs chan DebugMessage
}

// NewStepper creates a Stepper.
func NewStepper() *Stepper {
	return &Stepper{msgs: make(chan DebugMessage)}
}

// Messages returns the channel on which the Stepper sends statements.
func (st *Stepper) Messages() <-chan DebugMessage {
	return st.msgs
}

// Hook returns a function suitable for Interpreter.Debug. Each call sends a
// DebugMessage and blocks until its Done channel is closed.
func (st *Stepper) Hook(env *Environment) func(Stmt) {
	return func(s Stmt) {
		done := make(chan struct{})
		st.msgs <- DebugMessage{Stmt: s, Env: env, Done: done}
		<-done
	}
}

// DebugMessage holds a statement about to execute and a channel to indicate
// it has been handled.
type DebugMessage struct {
	Stmt Stmt
	Env  *Environment
	Done chan struct{}
}

// debugStmt does nothing if debugging is disabled for the interpreter;
// otherwise, it passes the statement to the debug hook.
func (in *Interpreter) debugStmt(s Stmt) {
	if in.Debug != nil {
		in.Debug(s)
	}
}
