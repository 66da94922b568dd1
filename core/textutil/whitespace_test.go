package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInline(t *testing.T) {
	assert.Equal(t, "a b", NormalizeInline("a   \t b"))
	assert.Equal(t, "a\nb", NormalizeInline("a\nb"), "newlines are preserved")
	assert.Equal(t, " x ", NormalizeInline("  x  "))
}

func TestNormalizeBlock(t *testing.T) {
	assert.Equal(t, "a b", NormalizeBlock("a \n\n b"))
	assert.Equal(t, " word ", NormalizeBlock("\n word \t"))
	assert.Equal(t, "unchanged", NormalizeBlock("unchanged"))
}

func TestNormalizeBlock_Idempotent(t *testing.T) {
	inputs := []string{"a \n\n b", "  x\ty  ", "already normal", ""}
	for _, in := range inputs {
		once := NormalizeBlock(in)
		assert.Equal(t, once, NormalizeBlock(once))
	}
}

func TestCollapseText(t *testing.T) {
	assert.Equal(t, "a b c", CollapseText("  a \n b\tc  "))
	assert.Equal(t, "", CollapseText("   \n\t "))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \n\t "))
	assert.False(t, IsBlank(" x "))
}
