package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Lenient bool
	Limit   int
	Calls   []string
}

var errNegative = errors.New("limit cannot be negative")

func withLenient() *Func[*testConfig] {
	return NoError(func(c *testConfig) {
		c.Lenient = true
		c.Calls = append(c.Calls, "lenient")
	})
}

func withLimit(n int) *Func[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errNegative
		}
		c.Limit = n
		c.Calls = append(c.Calls, "limit")

		return nil
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply[*testConfig](cfg, withLimit(3), withLenient())
		require.NoError(t, err)
		require.True(t, cfg.Lenient)
		require.Equal(t, 3, cfg.Limit)
		require.Equal(t, []string{"limit", "lenient"}, cfg.Calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.Calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply[*testConfig](cfg, nil, withLenient()))
		require.True(t, cfg.Lenient)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply[*testConfig](cfg, withLenient(), withLimit(-1), withLimit(5))
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, []string{"lenient"}, cfg.Calls)
		require.Zero(t, cfg.Limit)
	})
}

func TestNoError(t *testing.T) {
	cfg := &testConfig{}
	opt := withLenient()
	require.NoError(t, opt.apply(cfg))
	require.True(t, cfg.Lenient)
}
