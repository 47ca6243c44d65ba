package errors_test

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	rangeErr := &domainerrors.PageOutOfRangeError{Requested: 9, Last: 3}
	wrapped := errors.Wrap(errors.Wrap(rangeErr, "failed to list stores"), "handler")

	found, ok := errors.Find[*domainerrors.PageOutOfRangeError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, 3, found.Last)

	_, ok = errors.Find[*domainerrors.DatabaseExecuteError](wrapped)
	assert.False(t, ok)

	appErr, ok := errors.Find[domainerrors.AppError](errors.Wrap(domainerrors.ErrStoreNotFound, "lookup"))
	assert.True(t, ok)
	assert.Equal(t, "STORE_NOT_FOUND", appErr.ErrorCode())
}

func TestWrapKeepsCause(t *testing.T) {
	base := errors.New("connection refused")
	wrapped := errors.Wrapf(base, "failed to ping %s", "postgres")

	assert.True(t, errors.Is(wrapped, base))
	assert.Equal(t, base, errors.Cause(wrapped))
	assert.Equal(t, "failed to ping postgres: connection refused", wrapped.Error())
}
