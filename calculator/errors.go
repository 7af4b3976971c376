package calculator

import "fmt"

// SingularSystemError means the assembled system has no unique solution,
// usually because the geometry is degenerate or self-intersecting.
type SingularSystemError struct {
	Reason string
	Cond   float64 // 条件数, 未知时为 0
	Row    int     // 出错位置, -1 表示不适用
	Col    int
	Err    error
}

func (e *SingularSystemError) Error() string {
	msg := "singular system: " + e.Reason
	if e.Row >= 0 && e.Col >= 0 {
		msg += fmt.Sprintf(" at (%d, %d)", e.Row, e.Col)
	} else if e.Row >= 0 {
		msg += fmt.Sprintf(" at %d", e.Row)
	}
	if e.Cond != 0 {
		msg += fmt.Sprintf(" (condition %g)", e.Cond)
	}
	return msg
}

func (e *SingularSystemError) Unwrap() error {
	return e.Err
}

// LeakError reports a net source strength too far from zero for a closed
// body.
type LeakError struct {
	Accuracy  float64
	Relative  float64
	Tolerance float64
}

func (e *LeakError) Error() string {
	return fmt.Sprintf("net source strength %g (relative %g) exceeds tolerance %g", e.Accuracy, e.Relative, e.Tolerance)
}
