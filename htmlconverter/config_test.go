package htmlconverter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := (Config{}).applyDefaults()

	assert.Equal(t, FlushBeforeBlock, cfg.FlushPolicy)
	assert.Equal(t, NestingShallow, cfg.InlineNesting)
	assert.Equal(t, ListItemFlatten, cfg.ListItemStyle)
	assert.Equal(t, UnknownParagraph, cfg.UnknownBlocks)
	assert.NotNil(t, cfg.Logger)
}

func TestValidateValid(t *testing.T) {
	cfg := Config{
		FlushPolicy:   FlushAtWalkEnd,
		InlineNesting: NestingDeep,
		ListItemStyle: ListItemRich,
		UnknownBlocks: UnknownSkip,
	}.applyDefaults()

	require.NoError(t, cfg.Validate())
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"flush policy", Config{FlushPolicy: "sometimes"}},
		{"inline nesting", Config{InlineNesting: "sideways"}},
		{"list item style", Config{ListItemStyle: "fancy"}},
		{"unknown blocks", Config{UnknownBlocks: "explode"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg.applyDefaults()
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{FlushPolicy: "sometimes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flushPolicy")
}
