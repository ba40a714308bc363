package uno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePool(t *testing.T) {
	for _, pool := range Pools {
		assert.NoError(t, ValidatePool(pool))
	}

	err := ValidatePool("axs")
	require.Error(t, err)

	var enumErr *BadEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "pool", enumErr.Kind)
	assert.Equal(t, "axs", enumErr.Value)
	assert.Equal(t, Pools, enumErr.Valid)
}

func TestValidateToken(t *testing.T) {
	for _, token := range Tokens {
		assert.NoError(t, ValidateToken(token))
	}

	var enumErr *BadEnumError
	require.ErrorAs(t, ValidateToken("DOGE"), &enumErr)
	assert.Equal(t, "token", enumErr.Kind)
	assert.Equal(t, "DOGE", enumErr.Value)
}

func TestValidateCurrency(t *testing.T) {
	for _, currency := range Currencies {
		assert.NoError(t, ValidateCurrency(currency))
	}

	// The API expects lowercase codes; uppercase is rejected, not folded.
	assert.Error(t, ValidateCurrency("USD"))
}

func TestBadEnumErrorMessageListsValidSetInOrder(t *testing.T) {
	err := ValidatePool("bogus")
	require.Error(t, err)
	assert.Equal(t, `invalid pool "bogus", valid values: AXS, AXS-WETH, SLP-WETH, RON-WETH`, err.Error())
}
