package password

import "golang.org/x/crypto/bcrypt"

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
)

// Hasher is the hashing strategy injected into the auth service. The
// stored scheme can be swapped without touching credential checks.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// Bcrypt is the default Hasher.
type Bcrypt struct {
	Cost int
}

// NewBcrypt creates a bcrypt hasher with the default cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{Cost: DefaultCost}
}

// Hash hashes a password using bcrypt
func (b *Bcrypt) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash
func (b *Bcrypt) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
