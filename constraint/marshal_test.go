package constraint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSystemSerialization(t *testing.T) {
	s := multiplierSystem(t)

	var buf bytes.Buffer
	written, err := s.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), written)

	var decoded System
	read, err := decoded.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, written, read)

	require.Equal(t, s.NbVariables, decoded.NbVariables)
	require.Equal(t, s.NbPublic, decoded.NbPublic)
	require.Equal(t, s.Constraints, decoded.Constraints)
	require.True(t, s.Wires.Equal(decoded.Wires))

	// serialization is deterministic
	var buf2 bytes.Buffer
	_, err = s.WriteTo(&buf2)
	require.NoError(t, err)
	var buf3 bytes.Buffer
	_, err = s.WriteTo(&buf3)
	require.NoError(t, err)
	require.Equal(t, buf2.Bytes(), buf3.Bytes())

	require.True(t, decoded.IsSatisfied(witnessFromInt64(1, 12, 3, 4)))
}

func TestSystemDeserializationError(t *testing.T) {
	var decoded System
	_, err := decoded.ReadFrom(bytes.NewReader([]byte{0xff, 0x00}))
	require.Error(t, err)
}
