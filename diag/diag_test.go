package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	assert := assert.New(t)

	msg := WrongArity()
	assert.Equal(KIND_WRONG_ARITY, msg.Kind)
	assert.True(msg.IsError())
	assert.Equal("error: wrong number of operands", msg.Error())

	var err error = msg
	assert.True(errors.Is(err, Message{Kind: KIND_WRONG_ARITY}))
	assert.False(errors.Is(err, Message{Kind: KIND_SYNTAX_ERROR}))

	assert.False(OverflowInLiteral("1").IsError())
	assert.Equal("warning", SEVERITY_WARNING.String())
	assert.Equal("addressing mode not allowed", KIND_ADDRESSING_MODE_NOT_ALLOWED.String())
	assert.Equal("Kind(99)", Kind(99).String())
}

func TestCollector(t *testing.T) {
	assert := assert.New(t)

	c := &Collector{}

	Permanent(c)(SyntaxError())
	Tentative(c)(ValueOutOfRange(0x80))
	c.AddTentativeMessage(BranchOutOfRange())

	assert.Equal(1, len(c.Permanent))
	assert.Equal(2, len(c.Tentative))

	all := c.All()
	assert.Equal([]Kind{KIND_SYNTAX_ERROR, KIND_VALUE_OUT_OF_RANGE, KIND_BRANCH_OUT_OF_RANGE},
		[]Kind{all[0].Kind, all[1].Kind, all[2].Kind})

	c.Reset()
	assert.Empty(c.Permanent)
	assert.Empty(c.Tentative)
}
