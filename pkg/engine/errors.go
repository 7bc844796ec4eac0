package engine

import "fmt"

// OpError reports a failed engine operation together with the engine owner.
type OpError struct {
	Owner string
	Op    string
	Err   error
}

func (e *OpError) Error() string {
	if e.Owner == "" {
		return fmt.Sprintf("engine: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("engine %s: %s: %v", e.Owner, e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func (e *Engine) fail(op string, err error) error {
	e.log.WithError(err).Debugf("%s failed", op)
	return &OpError{Owner: e.params.Owner, Op: op, Err: err}
}
