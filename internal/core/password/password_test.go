package password

import "testing"

func TestHashVerify_RoundTrip(t *testing.T) {
	hash, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !Verify("s3cret", hash) {
		t.Fatalf("Verify rejected the original plaintext")
	}
	if Verify("other", hash) {
		t.Fatalf("Verify accepted a different plaintext")
	}
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	h1, err := Hash("same input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := Hash("same input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same input must differ")
	}
}

func TestVerify_FailsClosed(t *testing.T) {
	if Verify("anything", "") {
		t.Fatalf("Verify accepted an empty stored hash")
	}
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("Verify accepted a malformed stored hash")
	}
}
