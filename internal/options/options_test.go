package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// parseConfig mirrors the shape of fileio's internal config struct
// (bool/int knobs set by WithXxx options) without importing fileio,
// keeping this package's tests independent of its only consumer.
type parseConfig struct {
	maxDepth               int
	requireFullConsumption bool
	lastApplied            string
}

func (pc *parseConfig) setMaxDepth(n int) error {
	if n <= 0 {
		return errors.New("max depth must be positive")
	}
	pc.maxDepth = n
	pc.lastApplied = "maxDepth"

	return nil
}

func (pc *parseConfig) setRequireFullConsumption(v bool) {
	pc.requireFullConsumption = v
	pc.lastApplied = "requireFullConsumption"
}

func withMaxDepth(n int) Option[*parseConfig] {
	return New(func(pc *parseConfig) error {
		return pc.setMaxDepth(n)
	})
}

func withRequireFullConsumption() Option[*parseConfig] {
	return NoError(func(pc *parseConfig) {
		pc.setRequireFullConsumption(true)
	})
}

func TestOption_New(t *testing.T) {
	config := &parseConfig{}

	t.Run("creates option that can return error", func(t *testing.T) {
		err := withMaxDepth(8).apply(config)
		require.NoError(t, err)
		require.Equal(t, 8, config.maxDepth)
		require.Equal(t, "maxDepth", config.lastApplied)
	})

	t.Run("propagates errors from option function", func(t *testing.T) {
		err := withMaxDepth(0).apply(config)
		require.Error(t, err)
		require.Contains(t, err.Error(), "max depth must be positive")
	})
}

func TestOption_NoError(t *testing.T) {
	config := &parseConfig{}

	err := withRequireFullConsumption().apply(config)
	require.NoError(t, err)
	require.True(t, config.requireFullConsumption)
	require.Equal(t, "requireFullConsumption", config.lastApplied)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		config := &parseConfig{}

		err := Apply(config,
			withMaxDepth(4),
			withRequireFullConsumption(),
		)

		require.NoError(t, err)
		require.Equal(t, 4, config.maxDepth)
		require.True(t, config.requireFullConsumption)
		require.Equal(t, "requireFullConsumption", config.lastApplied) // last option wins
	})

	t.Run("stops at first error and returns it", func(t *testing.T) {
		config := &parseConfig{}

		err := Apply(config,
			withMaxDepth(4),  // succeeds
			withMaxDepth(-1), // fails
			withRequireFullConsumption(),
		)

		require.Error(t, err)
		require.Contains(t, err.Error(), "max depth must be positive")
		require.Equal(t, 4, config.maxDepth)
		require.False(t, config.requireFullConsumption, "options after the failing one must not apply")
	})

	t.Run("works with empty options slice", func(t *testing.T) {
		config := &parseConfig{}
		err := Apply(config)
		require.NoError(t, err)
		require.Equal(t, parseConfig{}, *config)
	})
}

// Test with a different target type to confirm the generic plumbing
// isn't accidentally coupled to parseConfig's shape.
type counter struct {
	n int
}

func TestOption_GenericsWithDifferentTypes(t *testing.T) {
	c := &counter{}
	opt := NoError(func(cc *counter) { cc.n = 7 })

	require.NoError(t, opt.apply(c))
	require.Equal(t, 7, c.n)

	var n int
	err := New(func(p *int) error {
		*p = 42
		return nil
	}).apply(&n)
	require.NoError(t, err)
	require.Equal(t, 42, n)
}
