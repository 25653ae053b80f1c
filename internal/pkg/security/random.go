package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

func GenerateRandomBytes(length uint32) ([]byte, error) {
	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return key, nil
}

func GenerateRandomBytesURLEncoded(length uint32) (string, error) {
	key, err := GenerateRandomBytes(length)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(key), nil
}

// GenerateNumericCode returns a random code of exactly the given number
// of digits. The first digit is never zero so the length is stable.
func GenerateNumericCode(digits uint32) (string, error) {
	if digits == 0 {
		return "", fmt.Errorf("digits must be positive")
	}

	low := big.NewInt(1)
	for range digits - 1 {
		low.Mul(low, big.NewInt(10))
	}

	span := new(big.Int).Mul(low, big.NewInt(9))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("read random int: %w", err)
	}

	return n.Add(n, low).String(), nil
}
