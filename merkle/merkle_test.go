package merkle

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/hash"
)

func leaves(n int) []types.Hash32 {
	out := make([]types.Hash32, n)
	for i := range out {
		out[i] = hash.Hash256([]byte{byte(i)})
	}
	return out
}

func TestRootEmpty(t *testing.T) {
	root, err := Root(nil)
	require.NoError(t, err)
	require.Equal(t, types.Hash32{}, root)
}

func TestRootPair(t *testing.T) {
	l := leaves(2)
	root, err := Root(l)
	require.NoError(t, err)
	require.Equal(t, types.Hash32(hash.Hash256(l[0][:], l[1][:])), root)
}

func parent(l, r types.Hash32) types.Hash32 {
	return hash.Hash256(l[:], r[:])
}

func TestRootOddLayers(t *testing.T) {
	var zero types.Hash32
	l := leaves(5)
	for _, tc := range []struct {
		desc     string
		leaves   []types.Hash32
		expected types.Hash32
		hex      string
	}{
		{
			desc:     "single leaf",
			leaves:   l[:1],
			expected: l[0],
			hex:      "1406e05881e299367766d313e26c05564ec91bf721d31726bd6e46e60689539a",
		},
		{
			desc:     "three leaves",
			leaves:   l[:3],
			expected: parent(parent(l[0], l[1]), parent(l[2], zero)),
			hex:      "81d35b662a1851fe80a519ace123b3fbf258c51bb2560004fa2ec4715d74fef0",
		},
		{
			desc:     "five leaves",
			leaves:   l[:5],
			expected: parent(parent(parent(l[0], l[1]), parent(l[2], l[3])), parent(parent(l[4], zero), zero)),
			hex:      "3d8e95175645f818f42e965ee50f7aa03dc0ddf3d15fda0294544abc411c8f5e",
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			root, err := Root(tc.leaves)
			require.NoError(t, err)
			require.Equal(t, tc.expected, root)
			require.Equal(t, tc.hex, hex.EncodeToString(root[:]))
		})
	}
}

func TestRootDoesNotDuplicateLast(t *testing.T) {
	l := leaves(3)
	root, err := Root(l)
	require.NoError(t, err)
	require.NotEqual(t, parent(parent(l[0], l[1]), parent(l[2], l[2])), root)
}

func TestRootDeterministic(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7} {
		first, err := Root(leaves(n))
		require.NoError(t, err)
		second, err := Root(leaves(n))
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.NotEqual(t, types.Hash32{}, first)
	}
}

func TestRootOrderSensitive(t *testing.T) {
	l := leaves(3)
	root, err := Root(l)
	require.NoError(t, err)

	l[0], l[2] = l[2], l[0]
	swapped, err := Root(l)
	require.NoError(t, err)
	require.NotEqual(t, root, swapped)
}

func TestRootDependsOnCount(t *testing.T) {
	l := leaves(4)
	full, err := Root(l)
	require.NoError(t, err)
	partial, err := Root(l[:3])
	require.NoError(t, err)
	require.NotEqual(t, full, partial)
}

func TestParentHashReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	out := ParentHash(buf, []byte{1}, []byte{2})
	expected := hash.Hash256([]byte{1, 2})
	require.Equal(t, expected[:], out)
}
