package commands

// ReportedError marks an error the command already printed. The entrypoint only
// sets the exit status for it.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}
