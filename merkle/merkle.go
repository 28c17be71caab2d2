// Package merkle computes the block commitments over ordered transaction and receipt hashes.
package merkle

import (
	"fmt"

	"github.com/spacemeshos/merkle-tree"

	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/hash"
)

// ParentHash combines two child nodes as hash256(left || right).
func ParentHash(buf, lChild, rChild []byte) []byte {
	sum := hash.Hash256(lChild, rChild)
	return append(buf[:0], sum[:]...)
}

// Root returns the merkle root of leaves in order.
//
// Parents are hash256(left || right). A layer with an odd number of nodes pairs its
// last node with 32 zero bytes; the last node is never duplicated. A single leaf is
// its own root and an empty list has the all-zero root.
func Root(leaves []types.Hash32) (types.Hash32, error) {
	if len(leaves) == 0 {
		return types.Hash32{}, nil
	}
	tree, err := merkle.NewTreeBuilder().
		WithHashFunc(ParentHash).
		Build()
	if err != nil {
		return types.Hash32{}, fmt.Errorf("build merkle tree: %w", err)
	}
	for i := range leaves {
		if err := tree.AddLeaf(leaves[i][:]); err != nil {
			return types.Hash32{}, fmt.Errorf("add leaf %d: %w", i, err)
		}
	}
	return types.BytesToHash32(tree.Root()), nil
}
