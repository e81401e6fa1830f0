package errors

// Error is an error that knows which flow stage produced it.
type Error interface {
	error
	Stage() string
}

// StageError pairs an underlying error with the name of the stage it
// occurred in.
type StageError struct {
	error
	stage string
}

// NewStage wraps err with a stage name, falling back to defaultName when
// the caller did not configure one.
func NewStage(stage string, defaultName string, err error) *StageError {
	if stage == "" {
		stage = defaultName
	}
	return &StageError{
		error: err,
		stage: stage,
	}
}

// Stage returns the name of the stage the error occurred in.
func (e *StageError) Stage() string {
	return e.stage
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *StageError) Unwrap() error {
	return e.error
}
