package shortener

import (
	"context"
	"crypto/md5"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// CodeLength is the exact length of every issued short code.
	CodeLength = 6

	maxCollisionAttempts = 100
)

// CodeChecker reports whether a candidate code is already taken.
// Repository.ExistsByCode satisfies the production case.
type CodeChecker interface {
	ExistsByCode(ctx context.Context, code Code) (bool, error)
}

// Generator derives short codes from long URLs by hashing. For a fixed
// input and store occupancy the same code is always produced, which makes
// re-shortening a known URL idempotent when no collision occurred.
type Generator struct {
	checker CodeChecker
	logger  *zap.Logger
}

// NewGenerator creates a new hash-based code generator.
func NewGenerator(checker CodeChecker, logger *zap.Logger) *Generator {
	return &Generator{
		checker: checker,
		logger:  logger,
	}
}

// Generate derives a unique 6-character base62 code for longURL.
// Collisions are resolved by deterministically mutating the hash input, up
// to maxCollisionAttempts times before giving up with ErrGenerationExhausted.
func (g *Generator) Generate(ctx context.Context, longURL string) (Code, error) {
	trimmed := strings.TrimSpace(longURL)
	if trimmed == "" {
		return "", fmt.Errorf("%w: url cannot be blank", ErrInvalidInput)
	}

	normalized := NormalizeURL(trimmed)
	input := normalized

	for attempt := 0; attempt < maxCollisionAttempts; attempt++ {
		code := deriveCode(input)

		taken, err := g.checker.ExistsByCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("checking code uniqueness: %w", err)
		}

		if !taken {
			return code, nil
		}

		// Mutate the input deterministically for the next probe.
		input = normalized + "_" + strconv.Itoa(attempt+1)

		g.logger.Warn("short code collision",
			zap.String("code", string(code)),
			zap.Int("attempt", attempt+1),
		)
	}

	return "", fmt.Errorf("%w after %d attempts", ErrGenerationExhausted, maxCollisionAttempts)
}

// deriveCode hashes the input and truncates the base62 encoding of the
// digest to the code length, keeping the most significant characters.
func deriveCode(input string) Code {
	digest := md5.Sum([]byte(input))

	return Code(encodeBase62(digest[:], CodeLength)[:CodeLength])
}

// NormalizeURL prepends https:// to URLs without an explicit scheme so that
// "example.com" and "https://example.com" hash identically.
func NormalizeURL(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "https://" + rawURL
	}

	return rawURL
}
