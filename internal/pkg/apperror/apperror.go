package apperror

// Kind classifies an application error so the HTTP boundary can map it to a
// status code in exactly one place.
type Kind int

const (
	KindInvalid   Kind = iota // malformed or missing input
	KindNotFound              // referenced entity absent
	KindForbidden             // wrong role for the operation
	KindConflict              // business-rule violation
)

// AppError is a domain error carrying a kind and a user-facing message.
type AppError struct {
	Kind    Kind
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a kind and message.
func New(kind Kind, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, kind Kind, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}
