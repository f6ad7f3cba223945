package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeTwice(t *testing.T) {
	data := []byte("1234567890")
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	require.Equal(t, second[:], ComputeTwice(SHA256, data))
}

func TestSizes(t *testing.T) {
	for _, alg := range Algorithms() {
		require.Len(t, Compute(alg, []byte("abc")), alg.Size(), alg.Name())
		require.Len(t, AllZero(alg), alg.Size())
		require.Equal(t, Compute(alg, []byte("abc")), alg.Func()([]byte("abc")))
	}
}

func TestKnownDigests(t *testing.T) {
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(Compute(SHA256, []byte("abc"))))
	require.Equal(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		hex.EncodeToString(Compute(SHA3_256, []byte("abc"))))
	require.Equal(t, "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc",
		hex.EncodeToString(Compute(RIPEMD160, []byte("abc"))))
}

func TestLookup(t *testing.T) {
	alg, ok := Lookup("SHA3-256")
	require.True(t, ok)
	require.Equal(t, SHA3_256.Name(), alg.Name())

	alg, ok = Lookup("md5")
	require.False(t, ok)
	require.True(t, alg.IsZero())
}

func TestHash160(t *testing.T) {
	h := Hash160([]byte("abc"))
	require.Len(t, h, 20)
	require.Equal(t, Compute(RIPEMD160, Compute(SHA256, []byte("abc"))), h)
}
