package stdf

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsEOF(t *testing.T) {
	assert.True(t, IsEOF(newError(Eof, "end of stream")))
	assert.False(t, IsEOF(newError(InvalidFile, "bad file")))
	assert.False(t, IsEOF(errors.New("plain error")))
}

func TestWrapErrorPreservesCause(t *testing.T) {
	cause := errors.New("disk fell over")
	err := wrapError(IoError, cause, "reading record header")
	assert.Contains(t, err.Error(), "disk fell over")
	assert.Equal(t, cause, pkgerrors.Cause(err.Unwrap()))
}

func TestNewErrorMatchesNewError(t *testing.T) {
	a := newError(AtdfSyntax, "bad line %d", 3)
	b := NewError(AtdfSyntax, "bad line %d", 3)
	assert.Equal(t, a.Error(), b.Error())
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "InvalidFile", InvalidFile.String())
	assert.Equal(t, "Unknown", Code(999).String())
}
