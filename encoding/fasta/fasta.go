// Package fasta measures the sequences of FASTA data: the name and base
// count of each record, which are the first two columns "samtools faidx"
// writes to a .fai index. Sequence data is counted and discarded.
//
// A record name is the text after '>' up to the first space or tab, so
// ">chr1 AC:CM000663.2" and ">chr1\tdesc" both name "chr1". Bases may be
// wrapped over any number of lines, with "\n" or "\r\n" endings.
package fasta

import (
	"bufio"
	"bytes"
	"io"
	"unicode"

	"github.com/pkg/errors"
)

// SeqLength is the name and length of one FASTA sequence. It is the first two
// columns of the sequence's "samtools faidx" index line.
type SeqLength struct {
	Name   string
	Length int64
}

// Lengths reads FASTA data and returns the length of each sequence, in order
// of appearance. The sequence data itself is not retained, so this is safe to
// use on whole-genome references.
func Lengths(in io.Reader) ([]SeqLength, error) {
	var (
		r       = bufio.NewReaderSize(in, 1<<20)
		seqs    []SeqLength
		cur     = -1
		nBytes  int64
		lineNum int
	)
	for {
		fullLine, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "couldn't read FASTA data")
		}
		nBytes += int64(len(fullLine))
		lineNum++
		line := bytes.TrimRight(fullLine, "\r\n")
		switch {
		case len(line) == 0:
		case line[0] == '>': // Start a new sequence.
			name := string(line[1:])
			if n := bytes.IndexFunc(line[1:], unicode.IsSpace); n >= 0 {
				name = string(line[1 : 1+n])
			}
			if name == "" {
				return nil, errors.Errorf("malformed FASTA file: empty sequence name at line %d", lineNum)
			}
			seqs = append(seqs, SeqLength{Name: name})
			cur = len(seqs) - 1
		default:
			if cur < 0 {
				return nil, errors.Errorf("malformed FASTA file: sequence data before the first header at line %d", lineNum)
			}
			seqs[cur].Length += int64(len(line))
		}
		if err == io.EOF {
			break
		}
	}
	if nBytes == 0 {
		return nil, errors.New("empty FASTA file")
	}
	return seqs, nil
}
