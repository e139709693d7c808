package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/katalvlaran/highroad/scoring"
)

// Pair holds the two input sequences. Names are empty for plain input.
type Pair struct {
	RowName string
	Row     []byte
	ColName string
	Col     []byte
}

// ReadPairFile opens path ("-" means stdin) and calls ReadPair.
func ReadPairFile(path string) (Pair, error) {
	if path == "-" {
		return ReadPair(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return Pair{}, fmt.Errorf("seqio: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadPair(f)
}

// ReadPair sniffs the first byte of r and parses it as FASTA or plain text.
func ReadPair(r io.Reader) (Pair, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return Pair{}, fmt.Errorf("seqio: read: %w", err)
	}
	if len(head) == 1 && head[0] == '>' {
		return readFasta(br)
	}
	return readPlain(br)
}

// readPlain takes the first two lines verbatim, minus line terminators.
func readPlain(br *bufio.Reader) (Pair, error) {
	var lines [2][]byte
	for i := range lines {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Pair{}, fmt.Errorf("seqio: read line %d: %w", i+1, err)
		}
		lines[i] = []byte(strings.TrimRight(string(line), "\r\n"))
		if err != nil {
			break
		}
	}
	return Pair{Row: lines[0], Col: lines[1]}, nil
}

// readFasta keeps the first two records.
func readFasta(br *bufio.Reader) (Pair, error) {
	fr := fasta.NewReader(br, linear.NewSeq("", nil, alphabet.DNA))
	var pair Pair
	for n := 0; n < 2; n++ {
		s, err := fr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Pair{}, fmt.Errorf("seqio: fasta record %d: %w", n+1, err)
		}
		ls, ok := s.(*linear.Seq)
		if !ok {
			return Pair{}, fmt.Errorf("seqio: fasta record %d: unexpected type %T", n+1, s)
		}
		residues := letters(ls.Seq)
		if n == 0 {
			pair.RowName, pair.Row = ls.Name(), residues
		} else {
			pair.ColName, pair.Col = ls.Name(), residues
		}
	}
	if pair.Row == nil {
		return Pair{}, ErrMissingSequence
	}
	return pair, nil
}

func letters(ls alphabet.Letters) []byte {
	out := make([]byte, len(ls))
	for i, l := range ls {
		out[i] = byte(l)
	}
	return out
}

// ParseParams parses the (match, mismatch, space) integers.
func ParseParams(args []string) (scoring.Policy, error) {
	if len(args) != 3 {
		return scoring.Policy{}, fmt.Errorf("%w: got %d values", ErrBadParameter, len(args))
	}
	var v [3]int
	for i, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return scoring.Policy{}, fmt.Errorf("%w: %q", ErrBadParameter, a)
		}
		v[i] = n
	}
	return scoring.New(v[0], v[1], v[2]), nil
}
