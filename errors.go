package linecode

import "fmt"

// FrameError reports which frame of a batch failed.
type FrameError struct {
	Frame int
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
