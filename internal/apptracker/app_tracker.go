package apptracker

// AppTracker reports failures of CLI commands to an error tracking service.
type AppTracker interface {
	CaptureMessage(message string)
	CaptureException(exception error)
}
