package lattice

import "gonum.org/v1/gonum/mat"

// Hopping builds the dense single-flavor hopping matrix of lat:
// T[i,j] = T[j,i] = -t on every unique nearest-neighbor bond and
// T[i,i] = -mu on the diagonal (chemical potential folded into T).
// Returns ErrNilLattice for a nil lattice.
// Complexity: O(N²) memory for the dense result, O(N + B) writes.
func Hopping(lat *Square, t, mu float64) (*mat.Dense, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}

	n := lat.Sites()
	T := mat.NewDense(n, n, nil)
	var i int
	for i = 0; i < n; i++ {
		T.Set(i, i, -mu)
	}
	for _, b := range lat.bonds {
		T.Set(b.I, b.J, -t)
		T.Set(b.J, b.I, -t)
	}

	return T, nil
}

// BlockDiagonal is a flavor-block-diagonal hopping matrix: F square blocks
// of equal dimension placed along the diagonal, zero elsewhere. It
// implements mat.Matrix read-only, so it can stand in for a dense hopping
// matrix anywhere one is consumed, while kernels that know the block
// structure contract flavor blocks independently via Block.
type BlockDiagonal struct {
	blocks []*mat.Dense
	n      int // dimension of each block
}

// NewBlockDiagonal constructs a block-diagonal matrix from the given blocks.
// Returns ErrBlockShape if no blocks are given, any block is non-square, or
// block dimensions differ.
func NewBlockDiagonal(blocks ...*mat.Dense) (*BlockDiagonal, error) {
	if len(blocks) == 0 {
		return nil, ErrBlockShape
	}
	r0, c0 := blocks[0].Dims()
	if r0 != c0 {
		return nil, ErrBlockShape
	}
	for _, blk := range blocks[1:] {
		r, c := blk.Dims()
		if r != r0 || c != c0 {
			return nil, ErrBlockShape
		}
	}

	return &BlockDiagonal{blocks: blocks, n: r0}, nil
}

// Dims returns the dimensions of the full flavor-extended matrix.
func (b *BlockDiagonal) Dims() (rows, cols int) {
	n := b.n * len(b.blocks)

	return n, n
}

// At returns the element at (i, j) of the full matrix: the corresponding
// block entry when i and j fall into the same flavor block, zero otherwise.
func (b *BlockDiagonal) At(i, j int) float64 {
	fi, fj := i/b.n, j/b.n
	if fi != fj {
		return 0
	}

	return b.blocks[fi].At(i%b.n, j%b.n)
}

// T returns the transpose view of the matrix (mat.Matrix contract).
func (b *BlockDiagonal) T() mat.Matrix {
	return mat.Transpose{Matrix: b}
}

// Blocks returns the number of flavor blocks.
func (b *BlockDiagonal) Blocks() int { return len(b.blocks) }

// BlockDim returns the dimension of a single flavor block.
func (b *BlockDiagonal) BlockDim() int { return b.n }

// Block returns the f-th diagonal block. The block is shared, not copied;
// callers must treat it as read-only. f must be in [0, Blocks()).
func (b *BlockDiagonal) Block(f int) *mat.Dense { return b.blocks[f] }
