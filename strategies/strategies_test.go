package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantave/backtester/strategies/buyandhold"
	"github.com/quantave/backtester/strategies/rsi"
)

func TestGetStrategies(t *testing.T) {
	t.Parallel()
	resp := GetStrategies()
	assert.Len(t, resp, 2)
}

func TestLoadStrategyByName(t *testing.T) {
	t.Parallel()
	s, err := LoadStrategyByName(buyandhold.Name)
	require.NoError(t, err)
	assert.Equal(t, buyandhold.Name, s.Name())

	s, err = LoadStrategyByName("RSI")
	require.NoError(t, err)
	assert.Equal(t, rsi.Name, s.Name())

	_, err = LoadStrategyByName("superdupermoneymaker")
	assert.ErrorIs(t, err, ErrStrategyNotFound)
}
