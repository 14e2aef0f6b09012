package exercise

import (
	"go.uber.org/zap"
)

const (
	MsgAssertionPassed = "Assertion passed"
	MsgAssertionFailed = "Assertion failed"
)

// Reporter prints assertion outcomes the way the textbook scripts do:
// a failed check is printed and counted, never fatal.
//
// Not safe for concurrent use.
type Reporter struct {
	*Printer
	logger *zap.Logger
	passed int
	failed []string
}

// NewReporter creates a Reporter printing through p and logging to logger.
// A nil logger is replaced by a no-op logger.
func NewReporter(p *Printer, logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{Printer: p, logger: logger}
}

// Check prints "Assertion passed" or "Assertion failed" for ok and
// returns ok.
func (r *Reporter) Check(name string, ok bool) bool {
	if ok {
		r.passed++
		r.logger.Debug("assertion passed", zap.String("check", name))
		r.Println(r.Paint(Green, MsgAssertionPassed))
		return true
	}
	r.failed = append(r.failed, name)
	r.logger.Warn("assertion failed", zap.String("check", name))
	r.Println(r.Paint(Red, MsgAssertionFailed))
	return false
}

// CheckAll reports a group of conditions as a single assertion, which
// passes only when every condition holds.
func (r *Reporter) CheckAll(name string, oks ...bool) bool {
	all := true
	for _, ok := range oks {
		all = all && ok
	}
	return r.Check(name, all)
}

// Logger returns the reporter's logger.
func (r *Reporter) Logger() *zap.Logger {
	return r.logger
}

func (r *Reporter) Passed() int {
	return r.passed
}

func (r *Reporter) Failed() int {
	return len(r.failed)
}

// Err returns an *AssertionError naming every failed check, or nil.
func (r *Reporter) Err() error {
	if len(r.failed) == 0 {
		return nil
	}
	failed := make([]string, len(r.failed))
	copy(failed, r.failed)
	return &AssertionError{Failed: failed}
}
