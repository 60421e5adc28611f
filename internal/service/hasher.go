package service

import "golang.org/x/crypto/bcrypt"

// SecretHasher — одностороннее хеширование паролей.
// Выделен в интерфейс, чтобы в тестах подменять bcrypt на дешёвую заглушку.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}

// BcryptHasher — реализация SecretHasher поверх bcrypt со стандартной стоимостью.
type BcryptHasher struct{}

func (BcryptHasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (BcryptHasher) Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
