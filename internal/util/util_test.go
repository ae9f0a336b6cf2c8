package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MakeTextList(t *testing.T) {
	testCases := []struct {
		name   string
		items  []string
		expect string
	}{
		{name: "empty", items: nil, expect: ""},
		{name: "one", items: []string{"tree"}, expect: "tree"},
		{name: "two", items: []string{"tree", "binary"}, expect: "tree and binary"},
		{name: "three", items: []string{"a", "b", "c"}, expect: "a, b, and c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, MakeTextList(tc.items))
		})
	}
}

func Test_OrderedSet_preservesInsertionOrder(t *testing.T) {
	assert := assert.New(t)

	s := NewOrderedSet[int]()
	assert.True(s.Add("c", 3))
	assert.True(s.Add("a", 1))
	assert.True(s.Add("b", 2))
	assert.False(s.Add("a", 99), "re-adding an existing key must be a no-op")

	assert.Equal([]string{"c", "a", "b"}, s.Keys())
	assert.Equal([]int{3, 1, 2}, s.Elements())

	v, ok := s.Get("a")
	assert.True(ok)
	assert.Equal(1, v)

	assert.Equal(3, s.Len())
}
