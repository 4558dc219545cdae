package symtab

import (
	"testing"

	"github.com/skx/sapcalc/bignum"
)

func TestFindMissing(t *testing.T) {
	tab := New()
	if _, ok := tab.Find("x"); ok {
		t.Errorf("expected Find on an empty table to report not-present")
	}
}

func TestInsertFind(t *testing.T) {
	tab := New()
	five := bignum.FromString("5")
	tab.Insert("x", five)

	got, ok := tab.Find("x")
	if !ok {
		t.Fatalf("expected to find x after Insert")
	}
	if got.Compare(five) != 0 {
		t.Errorf("Find(x) = %s, want %s", got, five)
	}
}

func TestInsertOverwrites(t *testing.T) {
	tab := New()
	tab.Insert("x", bignum.FromString("1"))
	tab.Insert("x", bignum.FromString("2"))

	got, _ := tab.Find("x")
	if got.String() != "2" {
		t.Errorf("Insert did not overwrite: got %s, want 2", got)
	}
}

func TestDelete(t *testing.T) {
	tab := New()
	tab.Insert("x", bignum.FromString("1"))
	tab.Delete("x")
	if _, ok := tab.Find("x"); ok {
		t.Errorf("expected Find after Delete to report not-present")
	}
}

func TestReset(t *testing.T) {
	tab := New()
	tab.Insert("x", bignum.FromString("1"))
	tab.Insert("y", bignum.FromString("2"))
	tab.Reset()
	if _, ok := tab.Find("x"); ok {
		t.Errorf("expected Find(x) after Reset to report not-present")
	}
	if _, ok := tab.Find("y"); ok {
		t.Errorf("expected Find(y) after Reset to report not-present")
	}
}

func TestChainingAtSmallCapacity(t *testing.T) {
	// Force collisions by using a capacity of 1: every key lands in
	// the same bucket, exercising the linear chain walk.
	tab := NewWithCapacity(1)
	tab.Insert("a", bignum.FromString("1"))
	tab.Insert("b", bignum.FromString("2"))
	tab.Insert("c", bignum.FromString("3"))

	for key, want := range map[string]string{"a": "1", "b": "2", "c": "3"} {
		got, ok := tab.Find(key)
		if !ok || got.String() != want {
			t.Errorf("Find(%s) = %v, %v; want %s, true", key, got, ok, want)
		}
	}
}
