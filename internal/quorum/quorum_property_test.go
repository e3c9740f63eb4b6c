package quorum

import "testing"

// TestQuorum_StrongIs2FPlus1 checks Strong(f) = 2f+1 over a wide range of f.
func TestQuorum_StrongIs2FPlus1(t *testing.T) {
	for f := 0; f <= 1000; f++ {
		if got := Strong(f); got != 2*f+1 {
			t.Fatalf("Strong(%d) = %d, want %d", f, got, 2*f+1)
		}
	}
}

// TestQuorum_StrongMajorityOfMinimalCluster checks that a strong quorum is
// always a strict majority of the minimal cluster size 3f+1.
func TestQuorum_StrongMajorityOfMinimalCluster(t *testing.T) {
	for f := 0; f <= 1000; f++ {
		n := 3*f + 1
		if 2*Strong(f) <= n {
			t.Fatalf("Strong(%d) = %d is not a majority of n = %d", f, Strong(f), n)
		}
	}
}

// TestQuorum_StrongExceedsWeakByF checks the gap between quorum levels.
func TestQuorum_StrongExceedsWeakByF(t *testing.T) {
	for f := 0; f <= 1000; f++ {
		if Strong(f)-Weak(f) != f {
			t.Fatalf("Strong(%d)-Weak(%d) = %d, want %d", f, f, Strong(f)-Weak(f), f)
		}
	}
}
