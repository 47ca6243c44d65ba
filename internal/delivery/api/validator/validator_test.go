package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required"`
	Age  int    `validate:"min=0,max=150"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Name: "ok", Age: 30}))

	err := v.Validate(&sample{Age: 200})
	require.Error(t, err)
	assert.Equal(t, "sample.Name: required; sample.Age: max", Details(err))
}

func TestDetails_PlainError(t *testing.T) {
	assert.Equal(t, "boom", Details(errors.New("boom")))
}
