package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/grubline/recipebox/internal/security"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// User is an account identity. The credential digest is unexported so it can
// never serialize and there is no password getter: SetPassword is the only
// way in, VerifyPassword the only way to use it.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Bio       *string   `json:"bio,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	passwordDigest string
}

func New(username string, bio, imageURL *string) User {
	return User{
		ID:        uuid.NewString(),
		Username:  username,
		Bio:       bio,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	}
}

// SetPassword hashes the plaintext and stores only the digest.
func (u *User) SetPassword(plain string) error {
	digest, err := security.HashPassword(plain)

	if err != nil {
		return err
	}

	u.passwordDigest = digest

	return nil
}

// VerifyPassword reports whether the plaintext matches the stored digest.
func (u *User) VerifyPassword(plain string) bool {
	return security.CheckPassword(u.passwordDigest, plain) == nil
}

// Digest exposes the stored credential digest for persistence. It is a
// one-way value; the plaintext cannot be read back from it.
func (u *User) Digest() string {
	return u.passwordDigest
}

// SetDigest rehydrates a digest loaded from storage.
func (u *User) SetDigest(digest string) {
	u.passwordDigest = digest
}
