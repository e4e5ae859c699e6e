package domain

// User is an account allowed to operate the dashboard. Emails are stored
// lowercased and must be unique; only the bcrypt hash of the password is
// ever persisted.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
