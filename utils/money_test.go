package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "5000.00", FormatMinorUnits(500000))
	assert.Equal(t, "0.00", FormatMinorUnits(0))
	assert.Equal(t, "0.05", FormatMinorUnits(5))
	assert.Equal(t, "12.34", FormatMinorUnits(1234))
	assert.Equal(t, "-12.34", FormatMinorUnits(-1234))
}
