package business

import (
	"context"
	"math/rand"
	"strings"

	catalogerrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/errors"
)

// maxCodeAttempts bounds the random draw-and-check loop. As the code space
// fills up allocation gets slower and eventually fails; that is an accepted
// limit of the 4-digit scheme, widen CODE_LENGTH before it is reached.
const maxCodeAttempts = 100

func randomCode(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

// allocateCode draws random fixed-length numeric codes until one is unused.
// The final arbiter is the unique index on movies.code: Create retries when
// a concurrent creation wins the same code after this check.
func (u *UseCase) allocateCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := randomCode(u.codeLength)

		exists, err := u.repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", catalogerrors.ErrCodeSpaceExhausted
}
