package source

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceStream_AppendsEndOfDocument(t *testing.T) {
	s := NewSliceStream(Start("set", nil), End("set"))

	var kinds []EventKind
	for {
		ev, err := s.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		kinds = append(kinds, ev.Kind)
	}

	assert.Equal(t, []EventKind{ElementStart, ElementEnd, EndOfDocument}, kinds)
	require.NoError(t, s.Close())
}

func TestTruncatedStream(t *testing.T) {
	s := NewTruncatedStream(Start("set", nil))

	_, err := s.Next()
	require.NoError(t, err)
	_, err = s.Next()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestEvent_Attrs(t *testing.T) {
	ev := Start("tile", map[string]string{"symmetry": "L", "name": "corner"})

	v, ok := ev.Attr("name")
	assert.True(t, ok)
	assert.Equal(t, "corner", v)
	_, ok = ev.Attr("weight")
	assert.False(t, ok)
	assert.Equal(t, []string{"name", "symmetry"}, ev.AttrNames())
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "ElementStart", ElementStart.String())
	assert.Equal(t, "EndOfDocument", EndOfDocument.String())
	assert.Equal(t, "EventKind(7)", EventKind(7).String())
}
