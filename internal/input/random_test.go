package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadRandom_ParsesCountAndValues(t *testing.T) {
	s, err := ReadRandom(strings.NewReader("3\n5 1 9\n"))
	require.NoError(t, err)

	require.Equal(t, 5, s.Next())
	require.Equal(t, 1, s.Next())
	require.Equal(t, 9, s.Next())
	require.Equal(t, 5, s.Next(), "the stream wraps back to position 0")
}

func TestReadRandom_CountMismatch(t *testing.T) {
	_, err := ReadRandom(strings.NewReader("3\n5 1\n"))
	require.Error(t, err)
}

func TestReadRandom_NonPositiveCount(t *testing.T) {
	_, err := ReadRandom(strings.NewReader("0\n"))
	require.Error(t, err)
}

func TestReadRandom_MissingCount(t *testing.T) {
	_, err := ReadRandom(strings.NewReader(""))
	require.Error(t, err)
}
