package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentgo/validate"
)

type address struct {
	Line1      string
	PostalCode string
}

type order struct {
	Number   string
	Quantity int
}

type customer struct {
	ID      int
	Name    string
	Email   string
	Address address
	Orders  []order
}

func newAddressValidator() *validate.Validator[address] {
	v := validate.New[address]()
	validate.RuleFor(v, "Line1", func(a address) string { return a.Line1 },
		validate.NotEmpty(),
	)
	validate.RuleFor(v, "PostalCode", func(a address) string { return a.PostalCode },
		validate.Matches(`^\d{5}$`),
	)
	return v
}

func newCustomerValidator() *validate.Validator[customer] {
	v := validate.New[customer]()
	validate.RuleFor(v, "ID", func(c customer) int { return c.ID },
		validate.GreaterThan(0),
	)
	validate.RuleFor(v, "Name", func(c customer) string { return c.Name },
		validate.NotEmpty(),
		validate.Length(2, 50),
	)
	validate.RuleFor(v, "Email", func(c customer) string { return c.Email },
		validate.Email(),
	).When(func(c customer) bool { return c.Email != "" })
	validate.RuleFor(v, "Address", func(c customer) address { return c.Address }).
		SetValidator(newAddressValidator())
	validate.RuleForEach(v, "Orders", func(c customer) []order { return c.Orders },
		validate.Must(func(o order) bool { return o.Quantity > 0 }).
			WithMessage("'{PropertyName}' must have a positive quantity."),
	)
	return v
}

func TestCustomerValidation(t *testing.T) {
	t.Parallel()

	valid := customer{
		ID:      7,
		Name:    "Jeremy",
		Email:   "jeremy@example.com",
		Address: address{Line1: "1 Main St", PostalCode: "12345"},
		Orders:  []order{{Number: "A-1", Quantity: 2}},
	}

	t.Run("fully valid customer passes", func(t *testing.T) {
		res := newCustomerValidator().Validate(valid)
		assert.True(t, res.IsValid())
		assert.NoError(t, res.Err())
	})

	t.Run("nested failures use dotted field paths", func(t *testing.T) {
		c := valid
		c.Address = address{Line1: "", PostalCode: "abc"}

		res := newCustomerValidator().Validate(c)
		require.False(t, res.IsValid())
		assert.True(t, res.Errors().Has("Address.Line1"))
		assert.True(t, res.Errors().Has("Address.PostalCode"))
		assert.Equal(t,
			[]string{"'Line1' must not be empty."},
			res.Errors().Get("Address.Line1"))
	})

	t.Run("element failures use indexed field paths", func(t *testing.T) {
		c := valid
		c.Orders = []order{
			{Number: "A-1", Quantity: 1},
			{Number: "A-2", Quantity: 0},
			{Number: "A-3", Quantity: -1},
		}

		res := newCustomerValidator().Validate(c)
		require.False(t, res.IsValid())
		assert.Equal(t, []string{"Orders[1]", "Orders[2]"}, res.Errors().Fields())
		assert.Equal(t,
			[]string{"'Orders' must have a positive quantity."},
			res.Errors().Get("Orders[1]"))
	})

	t.Run("nested element validators prefix the index", func(t *testing.T) {
		ov := validate.New[order]()
		validate.RuleFor(ov, "Number", func(o order) string { return o.Number },
			validate.NotEmpty(),
		)

		v := validate.New[customer]()
		validate.RuleForEach(v, "Orders", func(c customer) []order { return c.Orders }).
			SetValidator(ov)

		c := valid
		c.Orders = []order{{Number: "A-1"}, {Number: ""}}

		res := v.Validate(c)
		require.False(t, res.IsValid())
		assert.True(t, res.Errors().Has("Orders[1].Number"))
	})

	t.Run("failures across the whole object aggregate", func(t *testing.T) {
		res := newCustomerValidator().Validate(customer{})
		require.False(t, res.IsValid())
		// ID, Name (x2: empty and too short), Address.Line1, Address.PostalCode.
		assert.Len(t, res.Errors(), 5)
	})

	t.Run("validator is reusable across values", func(t *testing.T) {
		v := newCustomerValidator()
		assert.True(t, v.Validate(valid).IsValid())
		assert.False(t, v.Validate(customer{}).IsValid())
		assert.True(t, v.Validate(valid).IsValid())
	})
}
