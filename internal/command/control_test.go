package command

import (
	"testing"

	"github.com/electronfraud/calc/internal/calcerr"
	"github.com/electronfraud/calc/internal/stack"
	"github.com/electronfraud/calc/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestExitAndQRaiseExitRequested(t *testing.T) {
	tab, _ := newTable(t)
	for _, name := range []string{"exit", "q"} {
		s := stack.New()
		s.Push(value.NewReal(1))

		assert.ErrorIs(t, tab[name](s), calcerr.ErrExitRequested)
		assert.Equal(t, 1, s.Depth(), "exit must not touch the stack")
	}
}
