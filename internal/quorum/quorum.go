package quorum

// Strong returns the strong quorum size 2f+1: enough nodes to guarantee
// overlap with any other strong quorum despite up to f faulty nodes.
// f must be non-negative; the caller enforces the contract.
func Strong(f int) int {
	return 2*f + 1
}

// Weak returns the weak quorum size f+1: enough nodes to guarantee at
// least one correct node among them.
func Weak(f int) int {
	return f + 1
}
