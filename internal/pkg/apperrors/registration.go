package apperrors

import "errors"

// ErrorKind classifies a registration failure.
type ErrorKind string

// Registration failure kinds. The set is closed: every business rejection the
// registration service produces is one of these.
const (
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindAlreadyStarted    ErrorKind = "ALREADY_STARTED"
	KindAlreadyRegistered ErrorKind = "ALREADY_REGISTERED"
)

// Entity names the resource a KindNotFound error refers to.
type Entity string

const (
	EntityNone         Entity = ""
	EntityStudent      Entity = "student"
	EntityCourse       Entity = "course"
	EntityRegistration Entity = "registration"
)

// RegistrationError is a terminal, user-visible business rejection. Message is
// the exact text returned to API clients.
type RegistrationError struct {
	Kind    ErrorKind
	Entity  Entity
	Message string
}

// Error implements error interface
func (e *RegistrationError) Error() string {
	return e.Message
}

// Is matches on kind and entity, so the register and unregister variants of
// an already-started rejection both match each other.
func (e *RegistrationError) Is(target error) bool {
	t, ok := target.(*RegistrationError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Entity == t.Entity
}

// Registration errors
var (
	ErrStudentNotFound = &RegistrationError{
		Kind:    KindNotFound,
		Entity:  EntityStudent,
		Message: "Student not found",
	}
	ErrCourseNotFound = &RegistrationError{
		Kind:    KindNotFound,
		Entity:  EntityCourse,
		Message: "Course not found",
	}
	ErrRegistrationNotFound = &RegistrationError{
		Kind:    KindNotFound,
		Entity:  EntityRegistration,
		Message: "Registration not found",
	}
	ErrRegisterCourseStarted = &RegistrationError{
		Kind:    KindAlreadyStarted,
		Message: "Cannot register for a course that has already started",
	}
	ErrUnregisterCourseStarted = &RegistrationError{
		Kind:    KindAlreadyStarted,
		Message: "Cannot unregister from a course that has already started",
	}
	ErrAlreadyRegistered = &RegistrationError{
		Kind:    KindAlreadyRegistered,
		Message: "Student has already registered for this course",
	}
)

// AsRegistrationError extracts the RegistrationError in err's chain, if any.
func AsRegistrationError(err error) (*RegistrationError, bool) {
	var regErr *RegistrationError
	if errors.As(err, &regErr) {
		return regErr, true
	}
	return nil, false
}

// KindOf reports the kind and entity of a registration error. ok is false for
// any other error, including infrastructure failures.
func KindOf(err error) (kind ErrorKind, entity Entity, ok bool) {
	regErr, ok := AsRegistrationError(err)
	if !ok {
		return "", EntityNone, false
	}
	return regErr.Kind, regErr.Entity, true
}
