package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentgo/validate"
)

type account struct {
	ID      int
	Balance float64
	Code    string
}

func TestInclusiveBetween(t *testing.T) {
	t.Parallel()

	newValidator := func() *validate.Validator[account] {
		v := validate.New[account]()
		validate.RuleFor(v, "ID", func(a account) int { return a.ID },
			validate.InclusiveBetween(1, 10),
		)
		return v
	}

	t.Run("passes when value is inside the range", func(t *testing.T) {
		res := newValidator().Validate(account{ID: 5})
		assert.True(t, res.IsValid())
		assert.NoError(t, res.Err())
	})

	t.Run("passes on the lower boundary", func(t *testing.T) {
		res := newValidator().Validate(account{ID: 1})
		assert.True(t, res.IsValid())
	})

	t.Run("passes on the upper boundary", func(t *testing.T) {
		res := newValidator().Validate(account{ID: 10})
		assert.True(t, res.IsValid())
	})

	t.Run("fails below the range", func(t *testing.T) {
		res := newValidator().Validate(account{ID: 0})
		require.False(t, res.IsValid())
		require.Len(t, res.Errors(), 1)
		assert.Equal(t, "'ID' must be between 1 and 10. You entered 0.", res.Errors()[0].Message)
		assert.Equal(t, "validation.inclusive_between", res.Errors()[0].Code)
		assert.Equal(t, 0, res.Errors()[0].Value)
	})

	t.Run("fails above the range", func(t *testing.T) {
		res := newValidator().Validate(account{ID: 11})
		require.False(t, res.IsValid())
		assert.Equal(t, "'ID' must be between 1 and 10. You entered 11.", res.Errors()[0].Message)
	})

	t.Run("records the bounds as placeholder params", func(t *testing.T) {
		res := newValidator().Validate(account{ID: 11})
		require.False(t, res.IsValid())
		params := res.Errors()[0].Params
		assert.Equal(t, 1, params["From"])
		assert.Equal(t, 10, params["To"])
		assert.Equal(t, 11, params["PropertyValue"])
	})

	t.Run("stores the configured bounds on the rule", func(t *testing.T) {
		rule := validate.InclusiveBetween(1, 10)
		assert.Equal(t, 1, rule.From)
		assert.Equal(t, 10, rule.To)
	})

	t.Run("works with floats", func(t *testing.T) {
		v := validate.New[account]()
		validate.RuleFor(v, "Balance", func(a account) float64 { return a.Balance },
			validate.InclusiveBetween(0.5, 9.5),
		)
		assert.True(t, v.Validate(account{Balance: 0.5}).IsValid())
		assert.True(t, v.Validate(account{Balance: 9.5}).IsValid())
		assert.False(t, v.Validate(account{Balance: 9.51}).IsValid())
	})

	t.Run("works with strings", func(t *testing.T) {
		v := validate.New[account]()
		validate.RuleFor(v, "Code", func(a account) string { return a.Code },
			validate.InclusiveBetween("aa", "bb"),
		)
		assert.True(t, v.Validate(account{Code: "ab"}).IsValid())
		assert.False(t, v.Validate(account{Code: "bc"}).IsValid())
	})

	t.Run("panics at construction when bounds are inverted", func(t *testing.T) {
		require.PanicsWithError(t,
			"validate: range lower bound exceeds upper bound: InclusiveBetween(10, 1)",
			func() { validate.InclusiveBetween(10, 1) },
		)
	})

	t.Run("inverted bounds panic wraps ErrInvalidRange", func(t *testing.T) {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, validate.ErrInvalidRange)
		}()
		validate.InclusiveBetween(10, 1)
	})
}

func TestExclusiveBetween(t *testing.T) {
	t.Parallel()

	newValidator := func() *validate.Validator[account] {
		v := validate.New[account]()
		validate.RuleFor(v, "ID", func(a account) int { return a.ID },
			validate.ExclusiveBetween(1, 10),
		)
		return v
	}

	t.Run("passes strictly inside the range", func(t *testing.T) {
		assert.True(t, newValidator().Validate(account{ID: 5}).IsValid())
	})

	t.Run("fails on the lower boundary", func(t *testing.T) {
		res := newValidator().Validate(account{ID: 1})
		require.False(t, res.IsValid())
		assert.Equal(t, "'ID' must be between 1 and 10 (exclusive). You entered 1.", res.Errors()[0].Message)
		assert.Equal(t, "validation.exclusive_between", res.Errors()[0].Code)
	})

	t.Run("fails on the upper boundary", func(t *testing.T) {
		assert.False(t, newValidator().Validate(account{ID: 10}).IsValid())
	})

	t.Run("fails outside the range", func(t *testing.T) {
		assert.False(t, newValidator().Validate(account{ID: 0}).IsValid())
		assert.False(t, newValidator().Validate(account{ID: 11}).IsValid())
	})

	t.Run("panics at construction when bounds are inverted", func(t *testing.T) {
		require.PanicsWithError(t,
			"validate: range lower bound exceeds upper bound: ExclusiveBetween(10, 1)",
			func() { validate.ExclusiveBetween(10, 1) },
		)
	})
}
