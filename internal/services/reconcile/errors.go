package reconcile

// ReconcileError is a custom error type for reconciliation service errors
type ReconcileError string

// Error implements the error interface
func (e ReconcileError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         ReconcileError = "config cannot be nil"
	ErrNilTicketRepo     ReconcileError = "ticket repository cannot be nil"
	ErrNilDrawRepo       ReconcileError = "draw repository cannot be nil"
	ErrNilClock          ReconcileError = "clock cannot be nil"
	ErrNilInput          ReconcileError = "input cannot be nil"
	ErrMissingTicketID   ReconcileError = "ticket ID cannot be empty"
	ErrHistoryNotEnabled ReconcileError = "settlement history is not configured"
)
