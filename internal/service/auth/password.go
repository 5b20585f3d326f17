package auth

import "golang.org/x/crypto/bcrypt"

// PasswordService hashes passwords and verifies them against stored hashes.
type PasswordService interface {
	// Hash returns the bcrypt hash of the password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash. Returns
	// nil on match.
	Compare(hashedPassword, password string) error
}

// BcryptService implements PasswordService using bcrypt.
type BcryptService struct {
	cost int
}

// NewBcryptService creates a bcrypt password service with the given cost.
// Costs outside bcrypt's supported range fall back to the library default.
func NewBcryptService(cost int) *BcryptService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptService{cost: cost}
}

var _ PasswordService = (*BcryptService)(nil)

// Hash implements PasswordService.Hash.
func (s *BcryptService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare implements PasswordService.Compare.
func (s *BcryptService) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
