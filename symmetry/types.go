package symmetry

import "github.com/nets-lab/periodicnet/rational"

// DefaultIdentifiers is the fallback reference triple used when no
// operator-free entry can be discovered in a symmetry list.
var DefaultIdentifiers = [3]string{"x", "y", "z"}

// EquivalentPosition is an affine map of ℚ³: p ↦ M·p + t, expressed in the
// basis identified by three reference labels. The identity map is always
// implicitly present in the group generated by a cell's equivalents and
// is never stored explicitly.
type EquivalentPosition struct {
	M rational.Mat3
	T rational.Rat3
}

// Identity returns the identity equivalent position (M=I, t=0).
func Identity() *EquivalentPosition {
	return &EquivalentPosition{M: rational.IdentityMat3(), T: rational.ZeroRat3()}
}

// Apply returns M·p + t.
func (e *EquivalentPosition) Apply(p rational.Rat3) rational.Rat3 {
	return e.M.MulVec3(p).Add(e.T)
}
