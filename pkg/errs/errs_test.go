package errs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	err := Format("base16", 3, "invalid character %q", 'z')
	require.True(t, IsFormat(err))
	require.False(t, IsChecksum(err))
	require.Equal(t, `base16: invalid character 'z' at offset 3`, err.Error())

	wrapped := errors.Wrap(err, "parse")
	require.True(t, IsFormat(wrapped))

	var fe *FormatError
	require.True(t, errors.As(wrapped, &fe))
	require.Equal(t, 3, fe.Offset)

	require.Equal(t, "base32: odd length", Format("base32", -1, "odd length").Error())

	cerr := errors.WithStack(&ChecksumError{Expected: [4]byte{1}, Actual: [4]byte{2}})
	require.True(t, IsChecksum(cerr))
	require.False(t, IsFormat(cerr))

	require.True(t, IsConfiguration(Configuration("need %d symbols", 32)))
}
