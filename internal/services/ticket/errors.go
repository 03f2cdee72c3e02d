package ticket

// TicketError is a custom error type for ticket service errors
type TicketError string

// Error implements the error interface
func (e TicketError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        TicketError = "config cannot be nil"
	ErrNilTicketRepo    TicketError = "ticket repository cannot be nil"
	ErrNilClock         TicketError = "clock cannot be nil"
	ErrNilUUIDGenerator TicketError = "UUID generator cannot be nil"
	ErrNilInput         TicketError = "input cannot be nil"
	ErrMissingTicketID  TicketError = "ticket ID cannot be empty"
	ErrMissingNumber    TicketError = "a red or blue number is required"
	ErrInvalidLimit     TicketError = "limit must be between 1 and 100"
)
