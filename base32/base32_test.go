package base32

import (
	"crypto/rand"
	stdbase32 "encoding/base32"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/pkg/errs"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		Name     string
		Alphabet *alphabet.Alphabet
		Plain    string
		Encoded  string
	}{
		{"default digits", alphabet.Base32, "1234567890", "GEZDGNBVGY3TQOJQ"},
		{"default upper", alphabet.Base32, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "IFBEGRCFIZDUQSKKJNGE2TSPKBIVEU2UKVLFOWCZLI======"},
		{"default lower", alphabet.Base32, "abcdefghijklmnopqrstuvwxyz", "MFRGGZDFMZTWQ2LKNNWG23TPOBYXE43UOV3HO6DZPI======"},
		{"hex digits", alphabet.Base32Hex, "1234567890", "64P36D1L6ORJGE9G"},
		{"hex upper", alphabet.Base32Hex, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "85146H258P3KGIAA9D64QJIFA18L4KQKALB5EM2PB8======"},
		{"hex lower", alphabet.Base32Hex, "abcdefghijklmnopqrstuvwxyz", "C5H66P35CPJMGQBADDM6QRJFE1ON4SRKELR7EU3PF8======"},
		{"rfc f", alphabet.Base32, "f", "MY======"},
		{"rfc fo", alphabet.Base32, "fo", "MZXQ===="},
		{"rfc foo", alphabet.Base32, "foo", "MZXW6==="},
		{"rfc foob", alphabet.Base32, "foob", "MZXW6YQ="},
		{"rfc fooba", alphabet.Base32, "fooba", "MZXW6YTB"},
		{"empty", alphabet.Base32, "", ""},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			require.Equal(t, test.Encoded, Encode([]byte(test.Plain), test.Alphabet, true))

			unpadded := strings.TrimRight(test.Encoded, "=")
			require.Equal(t, unpadded, Encode([]byte(test.Plain), test.Alphabet, false))

			decoded, err := Decode(test.Encoded, test.Alphabet)
			require.NoError(t, err)
			require.Equal(t, test.Plain, string(decoded))

			decoded, err = Decode(unpadded, test.Alphabet)
			require.NoError(t, err)
			require.Equal(t, test.Plain, string(decoded))
		})
	}
}

func TestNilAlphabetIsDefault(t *testing.T) {
	require.Equal(t, "GEZDGNBVGY3TQOJQ", Encode([]byte("1234567890"), nil, true))
	decoded, err := Decode("GEZDGNBVGY3TQOJQ", nil)
	require.NoError(t, err)
	require.Equal(t, "1234567890", string(decoded))
}

func TestRoundTripMatchesStdlib(t *testing.T) {
	buf := make([]byte, 100)
	_, err := rand.Read(buf)
	require.NoError(t, err)

	std := stdbase32.StdEncoding
	hex := stdbase32.HexEncoding.WithPadding(stdbase32.NoPadding)

	for i := 0; i <= len(buf); i++ {
		src := buf[:i]
		require.Equal(t, std.EncodeToString(src), Encode(src, alphabet.Base32, true))
		require.Equal(t, hex.EncodeToString(src), Encode(src, alphabet.Base32Hex, false))

		for _, a := range []*alphabet.Alphabet{alphabet.Base32, alphabet.Base32Hex, alphabet.ZBase32, alphabet.Geohash, alphabet.Crockford} {
			for _, padding := range []bool{true, false} {
				encoded := Encode(src, a, padding)
				require.Len(t, encoded, EncodedLen(i, padding))
				decoded, err := Decode(encoded, a)
				require.NoError(t, err)
				require.Equal(t, src, decoded)
			}
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	// 区分大小写
	_, err := Decode("gezdgnbv", alphabet.Base32)
	require.True(t, errs.IsFormat(err))

	_, err = Decode("GEZD=NBV", alphabet.Base32)
	require.True(t, errs.IsFormat(err))
	var fe *errs.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 4, fe.Offset)

	for _, s := range []string{"M", "MZX", "MZXW6Y", "MZXW6YTBM======="} {
		_, err = Decode(s, alphabet.Base32)
		require.True(t, errs.IsFormat(err), s)
	}
}

func TestWrongSizeAlphabet(t *testing.T) {
	_, err := Decode("zzzzzzzz", alphabet.Base58)
	require.True(t, errs.IsConfiguration(err))

	require.PanicsWithValue(t,
		`base32: configuration error: alphabet "base16" has 16 symbols, base32 needs 32`,
		func() { Encode([]byte{0xff, 0xff}, alphabet.Base16, true) })
}

func TestDecodeIgnoresTrailingBits(t *testing.T) {
	decoded, err := Decode("MZ======", alphabet.Base32)
	require.NoError(t, err)
	require.Equal(t, "f", string(decoded))
}

func BenchmarkEncode(b *testing.B) {
	src := []byte("this is the example")
	for i := 0; i < b.N; i++ {
		_ = Encode(src, alphabet.Base32, true)
	}
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Decode("ORUGS4ZANFZSA5DIMUQGK6DBNVYGYZI=", alphabet.Base32)
	}
}
