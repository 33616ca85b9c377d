package genome

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/grailbio/base/errors"
)

// accessionPrefix marks RefSeq accession names. Any name carrying it is kept,
// so accession-named contigs outside the T2T table still reach Match (and
// then make it fail) instead of being filtered out.
const accessionPrefix = "NC_"

var allowed = func() map[string]bool {
	m := map[string]bool{}
	for _, b := range Builds {
		for name := range tables[b] {
			m[name] = true
		}
	}
	return m
}()

// Keep reports whether a sequence name takes part in build detection. Decoys,
// alternate haplotypes and unplaced scaffolds are dropped. Names are matched
// verbatim: "1" is not "chr1".
func Keep(name string) bool {
	return allowed[name] || strings.HasPrefix(name, accessionPrefix)
}

// ReadSizes parses an index listing of the form "<name>\t<length>[\t...]",
// as written by "samtools faidx" or "samtools idxstats", and returns the
// lengths of the sequences accepted by Keep. Each line is right-trimmed and
// split on tabs; quotes have no special meaning. Columns past the second are
// ignored, as are lines whose name is not kept. A kept name without a length
// column is an error. The result may be empty.
func ReadSizes(in io.Reader) (Sizes, error) {
	r := bufio.NewReader(in)
	sizes := Sizes{}
	for lineNum := 1; ; lineNum++ {
		fullLine, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.E(err, "read index listing")
		}
		cols := strings.Split(strings.TrimRightFunc(fullLine, unicode.IsSpace), "\t")
		if name := cols[0]; Keep(name) {
			if len(cols) < 2 {
				return nil, errors.E(errors.Invalid, fmt.Sprintf("index listing line %d: no length column for %s", lineNum, name))
			}
			sizes[name] = cols[1]
		}
		if err == io.EOF {
			break
		}
	}
	return sizes, nil
}
