package dto

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/port-russell/marina-service/pkg/util"
)

const (
	msgUserName     = "name must be at least 3 characters"
	msgUserEmail    = "email must be a valid email address"
	msgUserPassword = "password must be at least 3 characters and contain a lowercase letter"
)

// UserCreateRequest is the signup payload.
type UserCreateRequest struct {
	Name     Scalar `json:"name" form:"name"`
	Email    Scalar `json:"email" form:"email"`
	Password Scalar `json:"password" form:"password"`
}

// UserCreate is a validated signup. Email is lowercased; the password is
// still plaintext and hashed by the service.
type UserCreate struct {
	Name     string
	Email    string
	Password string
}

// Validate checks every field and returns either the validated value or the
// field errors in rule order.
func (r UserCreateRequest) Validate() (UserCreate, []util.FieldError) {
	var errs []util.FieldError

	name := r.Name.Trimmed()
	if len(name) < 3 {
		errs = append(errs, util.FieldError{Field: "name", Message: msgUserName})
	}

	email, ok := normalizeEmail(r.Email.Trimmed())
	if !ok {
		errs = append(errs, util.FieldError{Field: "email", Message: msgUserEmail})
	}

	password := r.Password.String()
	if !validPassword(password) {
		errs = append(errs, util.FieldError{Field: "password", Message: msgUserPassword})
	}

	if len(errs) > 0 {
		return UserCreate{}, errs
	}
	return UserCreate{Name: name, Email: email, Password: password}, nil
}

// UserUpdateRequest is the partial-update payload; every field is optional.
type UserUpdateRequest struct {
	Name     Scalar `json:"name" form:"name"`
	Email    Scalar `json:"email" form:"email"`
	Password Scalar `json:"password" form:"password"`
}

// UserPatch carries the fields to overwrite. Absent or blank fields stay
// nil and leave the stored value untouched.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
}

// Validate applies the create rules to every supplied field. Blank fields
// are treated as absent.
func (r UserUpdateRequest) Validate() (UserPatch, []util.FieldError) {
	var (
		patch UserPatch
		errs  []util.FieldError
	)

	if !r.Name.Empty() {
		name := r.Name.Trimmed()
		if len(name) < 3 {
			errs = append(errs, util.FieldError{Field: "name", Message: msgUserName})
		} else {
			patch.Name = &name
		}
	}

	if !r.Email.Empty() {
		email, ok := normalizeEmail(r.Email.Trimmed())
		if !ok {
			errs = append(errs, util.FieldError{Field: "email", Message: msgUserEmail})
		} else {
			patch.Email = &email
		}
	}

	if !r.Password.Empty() {
		password := r.Password.String()
		if !validPassword(password) {
			errs = append(errs, util.FieldError{Field: "password", Message: msgUserPassword})
		} else {
			patch.Password = &password
		}
	}

	if len(errs) > 0 {
		return UserPatch{}, errs
	}
	return patch, nil
}

// AuthenticateRequest is the login payload.
type AuthenticateRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func normalizeEmail(email string) (string, bool) {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", false
	}
	return strings.ToLower(email), true
}

func validPassword(password string) bool {
	if len(password) < 3 {
		return false
	}
	for _, r := range password {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}
