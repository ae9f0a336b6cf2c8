package synerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_KindOf(t *testing.T) {
	assert := assert.New(t)

	lexErr := Lexerf("bad token at %d", 3)
	kind, ok := KindOf(lexErr)
	assert.True(ok)
	assert.Equal(KindLexer, kind)

	parseErr := Parse("rejected")
	kind, ok = KindOf(parseErr)
	assert.True(ok)
	assert.Equal(KindParse, kind)

	_, ok = KindOf(errors.New("not ours"))
	assert.False(ok)
}

func Test_WrapParsef_unwraps(t *testing.T) {
	assert := assert.New(t)

	cause := errors.New("underlying")
	wrapped := WrapParsef(cause, "while doing thing: %s", cause)

	assert.Same(cause, errors.Unwrap(wrapped))
}
