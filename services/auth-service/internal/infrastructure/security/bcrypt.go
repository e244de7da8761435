package security

import "golang.org/x/crypto/bcrypt"

type BcryptEncoder struct{}

func NewBcryptEncoder() *BcryptEncoder {
	return &BcryptEncoder{}
}

func (s *BcryptEncoder) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (s *BcryptEncoder) Compare(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
