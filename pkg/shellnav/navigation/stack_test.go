package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(Entry{Page: "A"})
	s.Push(Entry{Page: "B", Parameter: 7})

	require.Equal(t, 2, s.Len())
	assert.Equal(t, Page("B"), s.Peek().Page)

	top := s.Pop()
	require.NotNil(t, top)
	assert.Equal(t, Entry{Page: "B", Parameter: 7}, *top)
	assert.Equal(t, Page("A"), s.Pop().Page)
	assert.True(t, s.IsEmpty())
}

func TestStackClear(t *testing.T) {
	s := NewStack()
	s.Push(Entry{Page: "A"})
	s.Push(Entry{Page: "B"})

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Peek())
}
