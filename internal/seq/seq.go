package seq

// Package seq defines the sequence record value type used by the project and
// the alphabet classification applied to it. Records are plain values:
// construct one with New and treat it as immutable afterwards.

import (
	"fmt"
	"strings"
)

// Alphabet labels the character composition of a sequence.
type Alphabet string

const (
	Nucleotide       Alphabet = "nucleotide"
	Protein          Alphabet = "protein"
	LikelyNucleotide Alphabet = "likely nucleotide"
	LikelyProtein    Alphabet = "likely protein"
	Unknown          Alphabet = "unknown"
)

// nucleotides holds the unambiguous nucleotide codes, U included for RNA.
var nucleotides = map[byte]bool{
	'A': true, 'C': true, 'G': true, 'T': true, 'U': true,
}

// proteins holds the 20 standard single-letter amino acid codes. The set
// overlaps nucleotides on A, C, G and T.
var proteins = map[byte]bool{
	'A': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'V': true, 'W': true, 'Y': true,
}

// Record represents a single FASTA record: a header and the sequence data
// concatenated into one string.
type Record struct {
	Header   string
	Sequence string
}

// New builds a Record from raw header and sequence text. The header is
// stripped of surrounding whitespace; the sequence is stripped and upper
// cased. Nothing else is validated: the sequence keeps whatever characters
// the source had.
func New(header, sequence string) Record {
	return Record{
		Header:   strings.TrimSpace(header),
		Sequence: strings.ToUpper(strings.TrimSpace(sequence)),
	}
}

// Len returns the number of characters in the normalized sequence.
func (r Record) Len() int {
	return len(r.Sequence)
}

// String renders the record as single-record FASTA: the header line followed
// by the entire sequence on one line, without wrapping.
func (r Record) String() string {
	return fmt.Sprintf(">%s\n%s", r.Header, r.Sequence)
}

// Counts tallies how many sequence characters fall in the nucleotide set,
// the protein set, and neither. A character present in both sets (A, C, G,
// T) contributes to both tallies, so nuc+prot+other may exceed Len.
func (r Record) Counts() (nuc, prot, other int) {
	for i := 0; i < len(r.Sequence); i++ {
		c := r.Sequence[i]
		known := false
		if nucleotides[c] {
			nuc++
			known = true
		}
		if proteins[c] {
			prot++
			known = true
		}
		if !known {
			other++
		}
	}
	return nuc, prot, other
}

// Alphabet classifies the sequence. If every distinct character is a
// nucleotide code the result is Nucleotide; failing that, if every distinct
// character is an amino acid code the result is Protein. Mixed content falls
// back to counting: a strict majority of nucleotide characters gives
// LikelyNucleotide, a strict majority of amino acid characters gives
// LikelyProtein, and everything else, ties included, is Unknown. An empty
// sequence classifies as Nucleotide because the empty character set is a
// subset of the nucleotide codes, which are checked first.
func (r Record) Alphabet() Alphabet {
	allNuc, allProt := true, true
	for i := 0; i < len(r.Sequence); i++ {
		c := r.Sequence[i]
		if !nucleotides[c] {
			allNuc = false
		}
		if !proteins[c] {
			allProt = false
		}
	}
	if allNuc {
		return Nucleotide
	}
	if allProt {
		return Protein
	}
	nuc, prot, _ := r.Counts()
	switch {
	case nuc > prot:
		return LikelyNucleotide
	case prot > nuc:
		return LikelyProtein
	}
	return Unknown
}
