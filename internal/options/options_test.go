package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-ytclient/internal/options"
)

type writerConfig struct {
	spaces bool
	indent int
	prefix string
}

func withIndent(indent int) options.Option[writerConfig] {
	return func(c *writerConfig) {
		c.indent = indent
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	defaults := writerConfig{spaces: false, indent: 4, prefix: ""}

	tests := []struct {
		name     string
		opts     []options.Option[writerConfig]
		expected writerConfig
	}{
		{
			name:     "no options",
			opts:     nil,
			expected: defaults,
		},
		{
			name:     "single option",
			opts:     []options.Option[writerConfig]{func(c *writerConfig) { c.spaces = true }},
			expected: writerConfig{spaces: true, indent: 4, prefix: ""},
		},
		{
			name:     "later option overrides earlier one",
			opts:     []options.Option[writerConfig]{withIndent(2), withIndent(8)},
			expected: writerConfig{spaces: false, indent: 8, prefix: ""},
		},
		{
			name: "nil options are skipped",
			opts: []options.Option[writerConfig]{
				nil,
				func(c *writerConfig) { c.prefix = "//" },
				nil,
			},
			expected: writerConfig{spaces: false, indent: 4, prefix: "//"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, options.Apply(defaults, tt.opts...))
		})
	}
}

func TestApply_DefaultsNotShared(t *testing.T) {
	t.Parallel()

	defaults := writerConfig{spaces: false, indent: 4, prefix: ""}

	changed := options.Apply(defaults, withIndent(1))

	assert.Equal(t, 1, changed.indent)
	assert.Equal(t, 4, defaults.indent)
}
