package stage

import (
	"fmt"
	"io"

	"github.com/kbukum/stagekit/logger"
)

// Print writes each value produced by s to w, one per line.
// The result owns s: reusing s in another chain shares its state.
func Print[I, O any](s Stage[I, O], w io.Writer) *Operator[I, O] {
	return Action(s, func(v O) {
		fmt.Fprintln(w, v)
	})
}

// PrintFunc writes fn(value) to w for each value produced by s.
// The result owns s: reusing s in another chain shares its state.
func PrintFunc[I, O any](s Stage[I, O], w io.Writer, fn func(O) string) *Operator[I, O] {
	return Action(s, func(v O) {
		fmt.Fprintln(w, fn(v))
	})
}

// PrintString writes text to w each time s produces a value.
// The result owns s: reusing s in another chain shares its state.
func PrintString[I, O any](s Stage[I, O], w io.Writer, text string) *Operator[I, O] {
	return Action(s, func(O) {
		fmt.Fprintln(w, text)
	})
}

// Describe replaces each value with its default formatting.
// The result owns s: reusing s in another chain shares its state.
func Describe[I, O any](s Stage[I, O]) *Operator[I, string] {
	return Map(s, func(v O) string { return fmt.Sprintf("%v", v) })
}

// DebugDescribe replaces each value with its Go-syntax representation.
// The result owns s: reusing s in another chain shares its state.
func DebugDescribe[I, O any](s Stage[I, O]) *Operator[I, string] {
	return Map(s, func(v O) string { return fmt.Sprintf("%#v", v) })
}

// Prefix prepends p to each string produced by s.
// The result owns s: reusing s in another chain shares its state.
func Prefix[I any](s Stage[I, string], p string) *Operator[I, string] {
	return Map(s, func(v string) string { return p + v })
}

// Not negates each bool produced by s.
// The result owns s: reusing s in another chain shares its state.
func Not[I any](s Stage[I, bool]) *Operator[I, bool] {
	return Map(s, func(v bool) bool { return !v })
}

// Log writes each value produced by s to l at debug level.
// The result owns s: reusing s in another chain shares its state.
func Log[I, O any](s Stage[I, O], l *logger.Logger, msg string) *Operator[I, O] {
	return Action(s, func(v O) {
		l.Debug(msg, logger.Fields(logger.FieldOutput, v))
	})
}
