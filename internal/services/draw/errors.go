package draw

// DrawError is a custom error type for draw service errors
type DrawError string

// Error implements the error interface
func (e DrawError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        DrawError = "config cannot be nil"
	ErrNilDrawRepo      DrawError = "draw repository cannot be nil"
	ErrNilClock         DrawError = "clock cannot be nil"
	ErrNilUUIDGenerator DrawError = "UUID generator cannot be nil"
	ErrNilInput         DrawError = "input cannot be nil"
	ErrMissingDrawID    DrawError = "draw ID cannot be empty"
	ErrInvalidDateRange DrawError = "date range needs a from before its to"
	ErrInvalidLimit     DrawError = "limit must be between 1 and 100"
)
