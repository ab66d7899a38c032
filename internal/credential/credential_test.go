package credential

import "testing"

func TestHash_IsDeterministicHex(t *testing.T) {
	h1 := Hash("s3cret")
	h2 := Hash("s3cret")
	if h1 != h2 {
		t.Fatalf("hash not deterministic: %s vs %s", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(h1))
	}
	if h1 == Hash("s3cret2") {
		t.Fatalf("distinct inputs produced the same digest")
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	for _, pw := range []string{"a", "hunter2", "pässwørd", "correct horse battery staple"} {
		if !Verify(pw, Hash(pw)) {
			t.Errorf("Verify(%q, Hash(%q)) = false, want true", pw, pw)
		}
		if Verify(pw, Hash(pw+"x")) {
			t.Errorf("Verify(%q, Hash(other)) = true, want false", pw)
		}
	}
}

func TestVerify_SingleCharMutationFails(t *testing.T) {
	stored := Hash("kitchen-admin-1")
	if !Verify("kitchen-admin-1", stored) {
		t.Fatal("exact password rejected")
	}
	if Verify("kitchen-admin-2", stored) {
		t.Fatal("mutated password accepted")
	}
}

func TestVerify_LegacyPlaintext(t *testing.T) {
	// Rows predating the hashing rollout hold the raw password.
	if !Verify("legacy-pass", "legacy-pass") {
		t.Fatal("legacy plaintext row rejected")
	}
	if Verify("legacy-pass", "legacy-pass-other") {
		t.Fatal("mismatched plaintext accepted")
	}
}

func TestVerify_EmptyStored(t *testing.T) {
	if Verify("", "") {
		t.Fatal("empty stored password must never verify")
	}
	if Verify("anything", "") {
		t.Fatal("empty stored password must never verify")
	}
}
