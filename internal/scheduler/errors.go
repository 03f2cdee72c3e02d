package scheduler

// SchedulerError is a custom error type for scheduler errors
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     SchedulerError = "config cannot be nil"
	ErrNilReconciler SchedulerError = "reconcile service cannot be nil"
	ErrEmptySchedule SchedulerError = "schedule cannot be empty"
)
