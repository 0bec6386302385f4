package shortener

import "math/big"

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// encodeBase62 encodes bytes as an unsigned big-endian integer in base 62,
// left-padding with '0' to minLength characters.
func encodeBase62(data []byte, minLength int) string {
	n := new(big.Int).SetBytes(data)
	base := big.NewInt(int64(len(base62Alphabet)))
	rem := new(big.Int)

	var digits []byte
	for n.Sign() > 0 {
		n.QuoRem(n, base, rem)
		digits = append(digits, base62Alphabet[rem.Int64()])
	}

	for len(digits) < minLength {
		digits = append(digits, base62Alphabet[0])
	}

	// Digits were collected least-significant first.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}
