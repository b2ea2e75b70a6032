package limiter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{name: "valid limit only", cfg: Config{Limit: 10}},
		{name: "valid offset only", cfg: Config{Offset: 5}},
		{name: "valid limit and offset", cfg: Config{Limit: 10, Offset: 5}},
		{name: "tail ignores offset", cfg: Config{Tail: 10, Offset: 5}},
		{name: "negative limit", cfg: Config{Limit: -1}, errMsg: "--limit must be non-negative"},
		{name: "negative offset", cfg: Config{Offset: -2}, errMsg: "--offset must be non-negative"},
		{name: "negative tail", cfg: Config{Tail: -3}, errMsg: "--tail must be non-negative"},
		{name: "limit with tail", cfg: Config{Limit: 1, Tail: 1}, errMsg: "mutually exclusive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestApply(t *testing.T) {
	rows := []string{"a", "b", "c", "d", "e"}
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{name: "inactive", cfg: Config{}, want: rows},
		{name: "limit", cfg: Config{Limit: 2}, want: []string{"a", "b"}},
		{name: "offset", cfg: Config{Offset: 3}, want: []string{"d", "e"}},
		{name: "offset and limit", cfg: Config{Offset: 1, Limit: 2}, want: []string{"b", "c"}},
		{name: "limit past end", cfg: Config{Offset: 4, Limit: 10}, want: []string{"e"}},
		{name: "offset past end", cfg: Config{Offset: 9}, want: []string{}},
		{name: "tail", cfg: Config{Tail: 2}, want: []string{"d", "e"}},
		{name: "tail longer than rows", cfg: Config{Tail: 9}, want: rows},
		{name: "tail ignores offset", cfg: Config{Tail: 1, Offset: 2}, want: []string{"e"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Apply(tt.cfg, rows))
		})
	}
}

func TestApplyEmpty(t *testing.T) {
	require.Empty(t, Apply(Config{Limit: 3}, []int{}))
	require.Nil(t, Apply(Config{}, []int(nil)))
}
