package session

import "testing"

func TestStaticStore(t *testing.T) {
	if got := UserID(Static("u1")); got != "u1" {
		t.Fatalf("UserID = %q, want u1", got)
	}
	if got := UserID(Static("")); got != "" {
		t.Fatalf("UserID = %q, want empty", got)
	}
}

func TestNilStoreIsUnauthenticated(t *testing.T) {
	if got := UserID(nil); got != "" {
		t.Fatalf("UserID(nil) = %q, want empty", got)
	}
}
