package orderid_test

import (
	"testing"

	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("permanent code is normalized", func(t *testing.T) {
		code, err := orderid.Parse(" rkr12 ")
		require.NoError(t, err)

		assert.Equal(t, "RKR012", code.String())
		n, ok := code.Number()
		assert.True(t, ok)
		assert.Equal(t, uint64(12), n)
		assert.False(t, code.IsPlaceholder())
	})

	t.Run("placeholder is kept verbatim", func(t *testing.T) {
		placeholder := orderid.NewPlaceholder()

		code, err := orderid.Parse(placeholder.String())
		require.NoError(t, err)

		assert.Equal(t, placeholder, code)
		assert.True(t, code.IsPlaceholder())
		_, ok := code.Number()
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := orderid.Parse("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := orderid.Parse("order-5")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("code must be the whole value", func(t *testing.T) {
		for _, s := range []string{"XRKR5abc", "RKR5abc", "xRKR5", "RKR", "RKR 5", "RKR-5"} {
			_, err := orderid.Parse(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})

	t.Run("lower-case prefix", func(t *testing.T) {
		code, err := orderid.Parse("rkr5")
		require.NoError(t, err)
		assert.Equal(t, "RKR005", code.String())
	})
}

func TestPlaceholdersAreUnique(t *testing.T) {
	assert.NotEqual(t, orderid.NewPlaceholder(), orderid.NewPlaceholder())
}

func TestFromNumber(t *testing.T) {
	assert.Equal(t, "RKR000", orderid.FromNumber(0).String())
	assert.Equal(t, "RKR1000", orderid.FromNumber(1000).String())

	var zero orderid.Code
	assert.True(t, zero.IsZero())
	require.Error(t, zero.Validate())
}
