package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string  `validate:"required,min=2,max=50"`
	Email    string  `validate:"required,email"`
	Quantity int     `validate:"min=1"`
	Price    float64 `validate:"gt=0"`
	Category string  `validate:"omitempty,oneof=Electronics Books"`
}

func TestDescribe(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   sample
		field   string
		message string
	}{
		{
			name:    "missing name",
			input:   sample{Email: "a@example.com", Quantity: 1, Price: 1},
			field:   "name",
			message: "is required",
		},
		{
			name:    "short name",
			input:   sample{Name: "A", Email: "a@example.com", Quantity: 1, Price: 1},
			field:   "name",
			message: "must be at least 2 characters",
		},
		{
			name:    "bad email",
			input:   sample{Name: "Ada", Email: "nope", Quantity: 1, Price: 1},
			field:   "email",
			message: "must be a valid email address",
		},
		{
			name:    "zero quantity",
			input:   sample{Name: "Ada", Email: "a@example.com", Quantity: 0, Price: 1},
			field:   "quantity",
			message: "must be at least 1",
		},
		{
			name:    "non-positive price",
			input:   sample{Name: "Ada", Email: "a@example.com", Quantity: 1, Price: 0},
			field:   "price",
			message: "must be greater than 0",
		},
		{
			name:    "unknown category",
			input:   sample{Name: "Ada", Email: "a@example.com", Quantity: 1, Price: 1, Category: "Food"},
			field:   "category",
			message: "must be one of Electronics Books",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.input)
			require.Error(t, err)

			fields := Describe(err)
			require.Len(t, fields, 1)
			assert.Equal(t, tc.field, fields[0].Field)
			assert.Equal(t, tc.message, fields[0].Message)
		})
	}
}

func TestDescribeMultipleFailures(t *testing.T) {
	v := New()

	err := v.Struct(sample{})
	require.Error(t, err)

	fields := Describe(err)
	assert.GreaterOrEqual(t, len(fields), 3)
}

func TestValidStruct(t *testing.T) {
	v := New()

	err := v.Struct(sample{Name: "Ada", Email: "a@example.com", Quantity: 2, Price: 19.99, Category: "Books"})
	assert.NoError(t, err)
}
