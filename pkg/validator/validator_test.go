package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

type sample struct {
	Name  *string  `json:"name" validate:"required,max=5"`
	Score *float64 `json:"score" validate:"omitempty,gte=0,lte=10"`
	Tags  []int64  `json:"tags" validate:"omitempty,min=1,max=2,unique"`
}

func TestDefaultValidator(t *testing.T) {
	v := validator.NewDefaultValidator()

	tests := []struct {
		name     string
		input    sample
		expected validator.Errors
	}{
		{
			name:  "valid",
			input: sample{Name: ptr.New("abc"), Score: ptr.New(0.0)},
		},
		{
			name:  "missing required",
			input: sample{},
			expected: validator.Errors{
				{Loc: "name", Msg: "field required", Type: "value_error.missing"},
			},
		},
		{
			name:  "collects every violation",
			input: sample{Name: ptr.New("abcdef"), Score: ptr.New(11.0), Tags: []int64{1, 2, 3}},
			expected: validator.Errors{
				{Loc: "name", Msg: "ensure this value has at most 5 characters", Type: "value_error.max"},
				{Loc: "score", Msg: "ensure this value is less than or equal to 10", Type: "value_error.lte"},
				{Loc: "tags", Msg: "ensure this value has at most 2 items", Type: "value_error.max"},
			},
		},
		{
			name:  "empty but present slice",
			input: sample{Name: ptr.New("abc"), Tags: []int64{}},
			expected: validator.Errors{
				{Loc: "tags", Msg: "ensure this value has at least 1 items", Type: "value_error.min"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}

			var errs validator.Errors
			require.True(t, errors.As(err, &errs))
			assert.Equal(t, tt.expected, errs)
		})
	}
}
