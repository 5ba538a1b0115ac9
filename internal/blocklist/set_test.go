package blocklist

import (
	"reflect"
	"testing"
)

func TestDenylist(t *testing.T) {
	t.Parallel()
	d := NewDenylist(DefaultDenylist())
	for _, denied := range []string{"blogspot.com", "s3.amazonaws.com", "www.no-ip.com"} {
		if d.Allowed(denied) {
			t.Errorf("Allowed(%q) = true; want false", denied)
		}
	}
	// Exact, case-sensitive match only.
	for _, ok := range []string{"Blogspot.com", "foo.blogspot.com", "blogspot.com.", "ads.example.com"} {
		if !d.Allowed(ok) {
			t.Errorf("Allowed(%q) = false; want true", ok)
		}
	}
	if d.Len() != len(DefaultDenylist()) {
		t.Errorf("Len() = %d; want %d", d.Len(), len(DefaultDenylist()))
	}

	var none *Denylist
	if !none.Allowed("blogspot.com") || none.Len() != 0 {
		t.Error("nil Denylist must allow everything")
	}
}

func TestDefaultDenylistIsACopy(t *testing.T) {
	t.Parallel()
	a := DefaultDenylist()
	a[0] = "mutated"
	if DefaultDenylist()[0] == "mutated" {
		t.Fatal("DefaultDenylist leaked its backing array")
	}
}

func TestDomainSetDeduplicates(t *testing.T) {
	t.Parallel()
	s := NewDomainSet()
	if !s.Add("b.example.com") || !s.Add("a.example.com") {
		t.Fatal("first insert must report new")
	}
	if s.Add("a.example.com") {
		t.Error("re-insert reported new")
	}
	if !s.Add("A.example.com") {
		t.Error("case variants are distinct members")
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", s.Len())
	}
	want := []string{"A.example.com", "a.example.com", "b.example.com"}
	if got := s.SortedDomains(); !reflect.DeepEqual(got, want) {
		t.Errorf("SortedDomains() = %v; want %v", got, want)
	}
	if !s.Contains("b.example.com") || s.Contains("c.example.com") {
		t.Error("Contains mismatch")
	}
}

func TestDomainSetDigestIsOrderIndependent(t *testing.T) {
	t.Parallel()
	a, b := NewDomainSet(), NewDomainSet()
	for _, d := range []string{"x.example", "y.example", "z.example"} {
		a.Add(d)
	}
	for _, d := range []string{"z.example", "x.example", "y.example", "x.example"} {
		b.Add(d)
	}
	if a.Digest() != b.Digest() {
		t.Fatalf("digests differ: %s vs %s", a.DigestString(), b.DigestString())
	}
	b.Add("w.example")
	if a.Digest() == b.Digest() {
		t.Fatal("digest did not change after adding a member")
	}
	if got := NewDomainSet().DigestString(); got != "0000000000000000" {
		t.Errorf("empty digest = %s", got)
	}
}
