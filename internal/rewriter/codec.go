package rewriter

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	apperrors "fantasybasket.io/replace-errors/internal/pkg/errors"
)

// Codec converts between file bytes and text.
type Codec interface {
	Decode(data []byte) (string, error)
	Encode(text string) ([]byte, error)
}

// UTF8 is the codec used for every read and write. Invalid byte sequences
// are decode errors; bytes are otherwise passed through untouched, so line
// endings and a leading BOM survive a rewrite.
var UTF8 Codec = utf8Codec{}

type utf8Codec struct{}

func (utf8Codec) Decode(data []byte) (string, error) {
	out, _, err := transform.Bytes(encoding.UTF8Validator, data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrInvalidEncoding, err)
	}
	return string(out), nil
}

func (utf8Codec) Encode(text string) ([]byte, error) {
	out, _, err := transform.Bytes(encoding.UTF8Validator, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidEncoding, err)
	}
	return out, nil
}
