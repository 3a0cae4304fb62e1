// Package session wires the calculator, operation log, and notifier into
// the evaluate-log-notify pipeline used by the CLI and the REPL.
package session

import (
	"github.com/pengelbrecht/tally/internal/calculator"
	"github.com/pengelbrecht/tally/internal/notify"
	"github.com/pengelbrecht/tally/internal/oplog"
)

// Outcome is the result of evaluating one expression.
type Outcome struct {
	Expr    string `json:"expression"`
	Value   int    `json:"result"`
	Alert   bool   `json:"alert"`
	Message string `json:"message"`
}

// Session evaluates expressions, records each result in an operation log,
// and checks it against a threshold notifier.
type Session struct {
	log      *oplog.Log
	notifier *notify.Notifier
}

// New returns a Session whose notifier uses the given threshold.
func New(threshold int) *Session {
	return &Session{
		log:      &oplog.Log{},
		notifier: notify.New(threshold),
	}
}

// Eval evaluates e, records the result, and reports the notifier's verdict.
// Failed evaluations are not recorded.
func (s *Session) Eval(e calculator.Expr) (Outcome, error) {
	value, err := e.Eval()
	if err != nil {
		return Outcome{}, err
	}

	expr := e.String()
	s.log.Record(expr, value)

	return Outcome{
		Expr:    expr,
		Value:   value,
		Alert:   s.notifier.ShouldNotify(value),
		Message: s.notifier.Message(value),
	}, nil
}

// EvalLine parses line as "<a> <op> <b>" and evaluates it.
func (s *Session) EvalLine(line string) (Outcome, error) {
	e, err := calculator.ParseExpr(line)
	if err != nil {
		return Outcome{}, err
	}
	return s.Eval(e)
}

// History returns the log entries for this session in evaluation order.
func (s *Session) History() []string {
	return s.log.Entries()
}

// Threshold returns the notifier threshold for this session.
func (s *Session) Threshold() int {
	return s.notifier.Threshold()
}
