package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueTableNextIsMonotonicPerName(t *testing.T) {
	vt := ValueTable{}

	assert.EqualValues(t, 1, vt.Next("x"))
	assert.EqualValues(t, 2, vt.Next("x"))
	assert.EqualValues(t, 1, vt.Next("y"))
	assert.EqualValues(t, 3, vt.Next("x"))
}

func TestReplacementTableLookup(t *testing.T) {
	rt := ReplacementTable{}
	src := ReplacementSlot{Name: "y", Version: 1}
	canon := ReplacementSlot{Name: "x", Version: 2}
	rt[src] = canon

	got, ok := rt[src]
	assert.True(t, ok)
	assert.Equal(t, canon, got)

	_, ok = rt[ReplacementSlot{Name: "z", Version: 1}]
	assert.False(t, ok)
}
