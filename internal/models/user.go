package models

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is the owner of all business records. Every query and mutation
// on cars, sales and expenses is scoped to exactly one user.
type User struct {
	DefaultModel
	Username     string `json:"username" gorm:"uniqueIndex" example:"dealer"` // Name the user logs in with
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	return nil
}

// SetPassword hashes the cleartext password and stores the hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the cleartext password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Session is an issued login token. The token is opaque to clients.
type Session struct {
	DefaultModel
	Token  string    `json:"token" gorm:"uniqueIndex"`
	UserID uuid.UUID `json:"userId"`
	User   User      `json:"-"`
}

// BeforeCreate generates the resource ID and the session token.
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	if s.Token == "" {
		s.Token = uuid.NewString()
	}

	return nil
}
