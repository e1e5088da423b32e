package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIModeDefaultsOff(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.AIMode(1))
}

func TestAIModeToggle(t *testing.T) {
	r := NewRegistry()

	r.SetAIMode(1, true)
	assert.True(t, r.AIMode(1))
	assert.False(t, r.AIMode(2), "flag harus per-chat")

	r.SetAIMode(1, false)
	assert.False(t, r.AIMode(1))

	// /stop tanpa /ai sebelumnya tidak apa-apa
	r.SetAIMode(3, false)
	assert.False(t, r.AIMode(3))
}

func TestStateTransitions(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, StateIdle, r.State(1))

	r.SetState(1, StateAwaitingStockInput)
	assert.Equal(t, StateAwaitingStockInput, r.State(1))
	assert.Equal(t, StateIdle, r.State(2), "state harus per-chat")

	r.SetState(1, StateIdle)
	assert.Equal(t, StateIdle, r.State(1))
}

func TestStateIndependentFromAIMode(t *testing.T) {
	r := NewRegistry()

	r.SetAIMode(1, true)
	r.SetState(1, StateAwaitingStockInput)
	r.SetState(1, StateIdle)

	assert.True(t, r.AIMode(1))
}
