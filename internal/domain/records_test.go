package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmployeeID(t *testing.T) {
	for _, id := range []string{"emp-1", "EMP_2", "a1b2c3", strings.Repeat("x", MaxEmployeeIDLength)} {
		assert.NoError(t, ValidateEmployeeID(id), id)
	}

	for _, id := range []string{"emp 1", "emp.1", "emp/1", "ação", strings.Repeat("x", MaxEmployeeIDLength+1)} {
		t.Run("Inválido "+id[:min(len(id), 10)], func(t *testing.T) {
			err := ValidateEmployeeID(id)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, "employee_id", inputErr.Field)
		})
	}
}
