package seq

import (
	"testing"
)

func TestNewNormalizes(t *testing.T) {
	r := New("  seq1 description \n", "\tacgt \n")
	if r.Header != "seq1 description" {
		t.Fatalf("unexpected header: %q", r.Header)
	}
	if r.Sequence != "ACGT" {
		t.Fatalf("unexpected sequence: %q", r.Sequence)
	}
}

func TestLen(t *testing.T) {
	if got := New("x", " acgtu ").Len(); got != 5 {
		t.Fatalf("expected length 5, got %d", got)
	}
	if got := New("x", "").Len(); got != 0 {
		t.Fatalf("expected length 0, got %d", got)
	}
}

func TestString(t *testing.T) {
	r := New(" s1 ", " acgt ")
	want := ">s1\nACGT"
	if got := r.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestAlphabet(t *testing.T) {
	cases := []struct {
		name     string
		sequence string
		want     Alphabet
	}{
		{"empty is nucleotide", "", Nucleotide},
		{"dna", "ACGT", Nucleotide},
		{"rna", "ACGU", Nucleotide},
		{"lowercase dna", "acgt", Nucleotide},
		{"single uracil", "U", Nucleotide},
		{"protein", "MKVL", Protein},
		{"all twenty amino acids", "ACDEFGHIKLMNPQRSTVWY", Protein},
		{"nucleotide majority", "ACGTUUUX", LikelyNucleotide},
		{"protein majority", "MKVLX", LikelyProtein},
		{"acgtx double count tie", "ACGTX", Unknown},
		{"foreign characters only", "123-", Unknown},
		{"single unknown char", "X", Unknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := New("h", c.sequence).Alphabet(); got != c.want {
				t.Fatalf("Alphabet(%q) = %q, want %q", c.sequence, got, c.want)
			}
		})
	}
}

func TestAlphabetOrderInvariant(t *testing.T) {
	// classification depends only on character counts, not order
	perms := []string{"ACGTX", "XTGCA", "GXACT", "TXACG"}
	for _, p := range perms {
		if got := New("h", p).Alphabet(); got != Unknown {
			t.Fatalf("Alphabet(%q) = %q, want %q", p, got, Unknown)
		}
	}
}

func TestAlphabetIdempotent(t *testing.T) {
	r := New("h", "ACGTMKVL")
	first := r.Alphabet()
	second := r.Alphabet()
	if first != second {
		t.Fatalf("classification changed between calls: %q then %q", first, second)
	}
}

func TestCountsDoubleCountsSharedCodes(t *testing.T) {
	// A, C, G and T belong to both reference sets and count toward both
	nuc, prot, other := New("h", "ACGTX").Counts()
	if nuc != 4 || prot != 4 || other != 1 {
		t.Fatalf("expected counts 4/4/1, got %d/%d/%d", nuc, prot, other)
	}
}
