package pattern

import (
	"testing"

	"github.com/mr-tron/base58"
)

func TestCompilePrefixRejectsBadLeadingChar(t *testing.T) {
	if _, err := CompilePrefix("2abc"); err != ErrBadPrefix {
		t.Fatalf("got %v, want ErrBadPrefix", err)
	}
}

func TestCompilePrefixRejectsTooLong(t *testing.T) {
	long := "1"
	for i := 0; i < maxPrefixLen; i++ {
		long += "a"
	}
	if _, err := CompilePrefix(long); err != ErrPrefixTooLong {
		t.Fatalf("got %v, want ErrPrefixTooLong", err)
	}
}

func TestCompilePrefixIntervalOrdered(t *testing.T) {
	ivs, err := CompilePrefix("1Love")
	if err != nil {
		t.Fatal(err)
	}
	for _, iv := range ivs {
		if cmp20(iv.Low, iv.High) > 0 {
			t.Fatalf("interval not ordered: %x > %x", iv.Low, iv.High)
		}
	}
}

func TestAddIdempotent(t *testing.T) {
	tbl := &Table{}
	iv := Interval{}
	iv.High[19] = 10
	if err := tbl.Add(iv); err != nil {
		t.Fatal(err)
	}
	before := tbl.Len()
	if err := tbl.Add(iv); err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != before {
		t.Fatalf("Add not idempotent: %d intervals before, %d after", before, tbl.Len())
	}
}

func TestAddCoalescesAdjacent(t *testing.T) {
	tbl := &Table{}
	var a, b Interval
	a.High[19] = 10
	b.Low[19] = 11
	b.High[19] = 20

	if err := tbl.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Add(b); err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("expected adjacent intervals to coalesce into 1, got %d", tbl.Len())
	}
	if tbl.intervals[0].High[19] != 20 {
		t.Fatalf("coalesced interval has wrong high byte: %d", tbl.intervals[0].High[19])
	}
}

func TestAddCommutative(t *testing.T) {
	var a, b, c Interval
	a.High[19] = 5
	b.Low[19] = 6
	b.High[19] = 10
	c.Low[18] = 1
	c.High[18] = 1

	order1 := &Table{}
	for _, iv := range []Interval{a, b, c} {
		if err := order1.Add(iv); err != nil {
			t.Fatal(err)
		}
	}
	order2 := &Table{}
	for _, iv := range []Interval{c, b, a} {
		if err := order2.Add(iv); err != nil {
			t.Fatal(err)
		}
	}
	if order1.Len() != order2.Len() {
		t.Fatalf("insertion order changed interval count: %d vs %d", order1.Len(), order2.Len())
	}
}

func TestDisjointNonAdjacent(t *testing.T) {
	tbl := &Table{}
	var a, b Interval
	a.High[19] = 10
	b.Low[19] = 20
	b.High[19] = 30
	if err := tbl.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Add(b); err != nil {
		t.Fatal(err)
	}
	ivs := tbl.Intervals()
	for i := range ivs {
		for j := range ivs {
			if i == j {
				continue
			}
			if cmp20(incrementSaturating(ivs[i].High), ivs[j].Low) == 0 {
				t.Fatalf("intervals %d and %d are adjacent but not merged", i, j)
			}
		}
	}
}

func TestContains(t *testing.T) {
	tbl := &Table{}
	var iv Interval
	iv.Low[19] = 5
	iv.High[19] = 10
	if err := tbl.Add(iv); err != nil {
		t.Fatal(err)
	}
	var h [20]byte
	h[19] = 7
	if !tbl.Contains(h) {
		t.Fatal("expected containment")
	}
	h[19] = 11
	if tbl.Contains(h) {
		t.Fatal("expected no containment")
	}
}

func TestBase58RoundTrip25And38Bytes(t *testing.T) {
	for _, n := range []int{25, 38} {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(i*7 + 3)
		}
		enc := base58.Encode(b)
		dec, err := base58.Decode(enc)
		if err != nil {
			t.Fatal(err)
		}
		if len(dec) != n {
			t.Fatalf("round trip length mismatch for n=%d: got %d", n, len(dec))
		}
		for i := range b {
			if b[i] != dec[i] {
				t.Fatalf("round trip mismatch at byte %d for n=%d", i, n)
			}
		}
	}
}

func TestDifficultyNeverBelowOne(t *testing.T) {
	tbl := &Table{}
	var iv Interval
	for i := range iv.Low {
		iv.Low[i] = 0
		iv.High[i] = 0xff
	}
	if err := tbl.Add(iv); err != nil {
		t.Fatal(err)
	}
	if d := Difficulty(tbl); d < 1 {
		t.Fatalf("difficulty %f below 1 for full-space table", d)
	}
}

func TestExpandCaseInsensitiveCount(t *testing.T) {
	variants, err := ExpandCaseInsensitive("1aB")
	if err != nil {
		t.Fatal(err)
	}
	// 'a' and 'b' are ambiguous letters -> 4 variants; 'B' folds to 'b' first.
	if len(variants) != 4 {
		t.Fatalf("got %d variants, want 4", len(variants))
	}
}
