package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmdEncconvTrapSelectionNamesMatchPackage(t *testing.T) {
	// Checks that each --on-error strategy name cmd/encconv accepts has
	// a trap type in this package. The name-to-trap mapping below is this
	// test's own copy; a change made only in cmd/encconv goes unnoticed.
	for _, name := range []string{"strict", "replace", "ignore", "ncr"} {
		var trap Trap
		switch name {
		case "strict":
			trap = Strict{}
		case "replace":
			trap = Replace{}
		case "ignore":
			trap = Ignore{}
		case "ncr":
			trap = NcrEscape{}
		}
		assert.NotNil(t, trap, "trap %q", name)
	}
}

func TestCodecProducesIndependentInstances(t *testing.T) {
	c, ok := Lookup("utf-8")
	assert.True(t, ok)
	// The utf-8 decoder carries pending-sequence state, so two fresh
	// instances are distinct allocations. (The utf-8 encoder is a
	// zero-size struct; Go may give every instance the same address.)
	a := c.NewDecoder()
	b := c.NewDecoder()
	assert.NotSame(t, a, b)
}
