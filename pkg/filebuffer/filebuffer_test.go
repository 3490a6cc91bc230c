package filebuffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionAt(t *testing.T) {
	t.Parallel()
	fb := New("test.toffee")
	_, err := fb.WriteString("foo = 42\nbar = 7\n")
	require.NoError(t, err)

	pos := fb.PositionAt(0)
	require.Equal(t, 1, pos.Line)
	require.Equal(t, 1, pos.Column)

	pos = fb.PositionAt(6)
	require.Equal(t, 1, pos.Line)
	require.Equal(t, 7, pos.Column)

	pos = fb.PositionAt(9)
	require.Equal(t, 2, pos.Line)
	require.Equal(t, 1, pos.Column)
	require.Equal(t, "test.toffee", pos.Filename)
	require.Equal(t, 9, pos.Offset)
}

func TestLine(t *testing.T) {
	t.Parallel()
	fb := New("test.toffee")
	_, err := fb.WriteString("foo\nbar\nbaz")
	require.NoError(t, err)
	require.Equal(t, 3, fb.Len())

	line, err := fb.Line(0)
	require.NoError(t, err)
	require.Equal(t, "foo", string(line))

	line, err = fb.Line(2)
	require.NoError(t, err)
	require.Equal(t, "baz", string(line))

	_, err = fb.Line(3)
	require.Error(t, err)
}
