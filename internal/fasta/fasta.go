package fasta

// Package fasta parses FASTA formatted data into sequence records. Parsing
// is deliberately permissive: blank lines are skipped wherever they appear,
// sequence lines may contain any characters, and malformed input (headers
// with no sequence, data before the first header) never produces an error.

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strings"

	"fastascan/internal/seq"
)

// Parse scans r line by line and yields one seq.Record per FASTA record.
// Lines beginning with '>' start a new record; the lines that follow are
// stripped and concatenated into its sequence. A record is yielded only when
// its boundary is reached, either the next header line or the end of the
// input. Input with no header line yields nothing. Stopping the iteration
// early stops the scan.
func Parse(r io.Reader) iter.Seq[seq.Record] {
	return func(yield func(seq.Record) bool) {
		scanner := bufio.NewScanner(r)
		var header string
		var lines []string
		open := false
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, ">") {
				if open && !yield(seq.New(header, strings.Join(lines, ""))) {
					return
				}
				header = line[1:]
				lines = nil
				open = true
			} else {
				lines = append(lines, line)
			}
		}
		if open {
			yield(seq.New(header, strings.Join(lines, "")))
		}
	}
}

// ParseAll reads every record from r into a slice.
func ParseAll(r io.Reader) []seq.Record {
	var records []seq.Record
	for rec := range Parse(r) {
		records = append(records, rec)
	}
	return records
}

// Parser reads FASTA records from a file path. It keeps no state between
// calls: IsFasta and Records each open and close the file on their own, so
// the same Parser can be probed and consumed any number of times.
type Parser struct {
	path string
}

// NewParser returns a Parser bound to path. The file is not touched until
// IsFasta or Records is called.
func NewParser(path string) *Parser {
	return &Parser{path: path}
}

// IsFasta reports whether the file looks like FASTA, judged by its first
// byte being '>'. A missing or unreadable file and an empty file both
// report false; IsFasta never returns an error.
func (p *Parser) IsFasta() bool {
	f, err := os.Open(p.path)
	if err != nil {
		return false
	}
	defer f.Close()
	var first [1]byte
	if _, err := io.ReadFull(f, first[:]); err != nil {
		return false
	}
	return first[0] == '>'
}

// Records opens the file and returns a single-pass iterator over its
// records. Unlike IsFasta, an open failure is returned to the caller
// unchanged, so errors.Is(err, fs.ErrNotExist) works. The file is closed
// when the iteration finishes, including when the caller breaks out early.
// Calling Records again re-opens the file and reads it from the start.
func (p *Parser) Records() (iter.Seq[seq.Record], error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, err
	}
	return func(yield func(seq.Record) bool) {
		defer f.Close()
		for rec := range Parse(f) {
			if !yield(rec) {
				return
			}
		}
	}, nil
}
