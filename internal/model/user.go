package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UsersTable is the table storing users.
const UsersTable = "users"

// User represents a registered account. Password holds the hashed credential only.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     string    `db:"email" json:"email"`
	Address   string    `db:"address" json:"address"`
	Password  []byte    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Users is a collection of users.
type Users []User

type userInput struct {
	FullName string `validate:"required,max=255"`
	Email    string `validate:"required,email,max=255"`
	Address  string `validate:"required,max=255"`
	Password string
}

func (in *userInput) setters() map[string]any {
	return map[string]any{
		"full_name": &in.FullName,
		"email":     &in.Email,
		"address":   &in.Address,
		"password":  &in.Password,
	}
}

// NewUser builds a user from request fields. A client-supplied id is ignored,
// a fresh one is generated and the password is hashed.
func NewUser(fields Fields, hasher PasswordHasher) (User, error) {
	var in userInput
	if err := fields.Without(FieldID).decodeInto(in.setters()); err != nil {
		return User{}, err
	}
	if err := validateStruct(in); err != nil {
		return User{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return User{}, err
	}

	hash, err := hasher.Hash(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	return User{
		ID:        uuid.New(),
		FullName:  in.FullName,
		Email:     in.Email,
		Address:   in.Address,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Apply overwrites the user with every allowed field present in fields.
// The id is never changed; a new password is re-hashed.
func (u *User) Apply(fields Fields, hasher PasswordHasher) error {
	in := userInput{FullName: u.FullName, Email: u.Email, Address: u.Address}
	fields = fields.Without(FieldID)
	if err := fields.decodeInto(in.setters()); err != nil {
		return err
	}
	if err := validateStruct(in); err != nil {
		return err
	}

	updated := *u
	updated.FullName = in.FullName
	updated.Email = in.Email
	updated.Address = in.Address

	if _, ok := fields["password"]; ok {
		if err := validatePassword(in.Password); err != nil {
			return err
		}
		hash, err := hasher.Hash(in.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		updated.Password = hash
	}

	updated.UpdatedAt = time.Now().UTC()
	*u = updated
	return nil
}

// CheckPassword reports whether plain matches the stored credential.
func (u User) CheckPassword(plain string, hasher PasswordHasher) bool {
	return hasher.Verify(plain, u.Password)
}

// Serialize returns the response representation of the user. The password is never included.
func (u User) Serialize() map[string]any {
	return map[string]any{
		"id":         u.ID.String(),
		"full_name":  u.FullName,
		"email":      u.Email,
		"address":    u.Address,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func (u User) Table() string  { return UsersTable }
func (u User) Key() uuid.UUID { return u.ID }

func (u User) Columns() []string {
	return []string{"id", "full_name", "email", "address", "password", "created_at", "updated_at"}
}

func (u User) Values() []any {
	return []any{u.ID, u.FullName, u.Email, u.Address, u.Password, u.CreatedAt, u.UpdatedAt}
}

func (Users) Table() string { return UsersTable }

// Serialize returns the response representation of every user.
func (us Users) Serialize() []map[string]any {
	out := make([]map[string]any, 0, len(us))
	for _, u := range us {
		out = append(out, u.Serialize())
	}
	return out
}

func validatePassword(plain string) error {
	if err := validate.Var(plain, "required,max=72"); err != nil {
		return fmt.Errorf("%w: password: %s", ErrInvalidData, err.Error())
	}
	return nil
}
