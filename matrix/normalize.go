// SPDX-License-Identifier: MIT

package matrix

// NormalizeRowsL1 returns a copy of m whose rows are scaled to L1-norm 1,
// together with the original row norms. Rows with norm 0 are left unchanged.
//
// A confusion matrix normalized this way holds P(decoded | true).
//
// Stages:
//  1. Validate m (non-nil).
//  2. Compute per-row L1 norms Σ_j |m_ij| in fixed i→j order.
//  3. Scale every row with a positive norm by 1/norm.
//
// Complexity: Time O(r*c), Space O(r*c) for the output.
func NormalizeRowsL1(m Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf("NormalizeRowsL1", err)
	}
	src, err := ToDense(m)
	if err != nil {
		return nil, nil, matrixErrorf("NormalizeRowsL1", err)
	}
	out := src.Clone().(*Dense)
	norms := make([]float64, out.r)

	var (
		i, j, base int
		s, v       float64
	)
	for i = 0; i < out.r; i++ {
		s = 0
		base = i * out.c
		for j = 0; j < out.c; j++ {
			v = out.data[base+j]
			if v < 0 {
				v = -v
			}
			s += v
		}
		norms[i] = s
		if s == 0 {
			continue // degenerate row stays as is
		}
		for j = 0; j < out.c; j++ {
			out.data[base+j] /= s
		}
	}

	return out, norms, nil
}
