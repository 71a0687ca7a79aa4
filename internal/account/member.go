package account

import "strings"

type Member struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string // empty for members created through Google login
}

// EmailKey lowercases and trims an email into the unique member key.
func EmailKey(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
