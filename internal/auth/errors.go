package auth

// CredentialsError indicates no registered user matched an email/password
// pair. The message is shown to the user as-is.
type CredentialsError struct{}

func (CredentialsError) Error() string { return "invalid email or password" }

// EmailTakenError indicates a signup attempt with an already registered
// email.
type EmailTakenError struct {
	Email string
}

func (e EmailTakenError) Error() string { return "email already in use: " + e.Email }

// UserNotFoundError indicates a password-reset request for an unknown
// email.
type UserNotFoundError struct {
	Email string
}

func (e UserNotFoundError) Error() string { return "no account found with that email: " + e.Email }
