package genome

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/genomebuild/encoding/fasta"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
)

// Format is the kind of file sequence lengths are read from.
type Format int

const (
	// FormatAuto picks the format from the file name; see GuessFormat.
	FormatAuto Format = iota
	// FormatListing is a tab-separated name/length listing (.fai,
	// "samtools idxstats" output, chrom.sizes).
	FormatListing
	// FormatSAM reads the @SQ lines of a SAM header.
	FormatSAM
	// FormatBAM reads the reference dictionary of a BAM header.
	FormatBAM
	// FormatFASTA measures every sequence of a FASTA file.
	FormatFASTA
)

var formatNames = map[Format]string{
	FormatAuto:    "auto",
	FormatListing: "listing",
	FormatSAM:     "sam",
	FormatBAM:     "bam",
	FormatFASTA:   "fasta",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat converts a format name, as printed by Format.String, back to a
// Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return FormatAuto, errors.E(errors.Invalid, fmt.Sprintf("unknown input format %q", s))
}

// GuessFormat picks a format from the suffix of path, ignoring a trailing
// .gz, .bgz or .bz2. Unrecognized suffixes are treated as listings.
func GuessFormat(path string) Format {
	name := strings.ToLower(filepath.Base(path))
	for _, ext := range []string{".gz", ".bgz", ".bz2"} {
		name = strings.TrimSuffix(name, ext)
	}
	switch filepath.Ext(name) {
	case ".bam":
		return FormatBAM
	case ".sam":
		return FormatSAM
	case ".fa", ".fasta", ".fna":
		return FormatFASTA
	}
	return FormatListing
}

// ReadSizesPath reads the sequence lengths stored in path, which may name a
// local file or any location the file package understands (e.g. s3://). Only
// the sequences accepted by Keep are returned. Compressed listings, SAM and
// FASTA files are decompressed based on their suffix.
func ReadSizesPath(ctx context.Context, path string, format Format) (sizes Sizes, err error) {
	if format == FormatAuto {
		format = GuessFormat(path)
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = errors.E(e, "close", path)
		}
	}()
	var r io.Reader = in.Reader(ctx)
	if format != FormatBAM {
		// BAM is BGZF-compressed by definition; bam.NewReader handles it.
		if u := compress.NewReaderPath(r, in.Name()); u != nil {
			r = u
		}
	}
	switch format {
	case FormatListing:
		sizes, err = ReadSizes(r)
	case FormatSAM:
		sizes, err = readSAMHeader(r)
	case FormatBAM:
		sizes, err = readBAMHeader(r)
	case FormatFASTA:
		sizes, err = readFASTA(r)
	default:
		err = errors.E(errors.Invalid, fmt.Sprintf("unsupported input format %v", format))
	}
	if err != nil {
		return nil, errors.E(err, path)
	}
	log.Debug.Printf("%s: read %d recognized sequence lengths as %v", path, len(sizes), format)
	return sizes, nil
}

// HeaderSizes returns the lengths of the references in a SAM/BAM header that
// are accepted by Keep.
func HeaderSizes(h *sam.Header) Sizes {
	sizes := Sizes{}
	for _, ref := range h.Refs() {
		if Keep(ref.Name()) {
			sizes[ref.Name()] = strconv.Itoa(ref.Len())
		}
	}
	return sizes
}

func readSAMHeader(r io.Reader) (Sizes, error) {
	sr, err := sam.NewReader(r)
	if err != nil {
		return nil, errors.E(err, "read SAM header")
	}
	return HeaderSizes(sr.Header()), nil
}

func readBAMHeader(r io.Reader) (sizes Sizes, err error) {
	br, err := bam.NewReader(r, 1)
	if err != nil {
		return nil, errors.E(err, "read BAM header")
	}
	defer func() {
		if e := br.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return HeaderSizes(br.Header()), nil
}

func readFASTA(r io.Reader) (Sizes, error) {
	seqs, err := fasta.Lengths(r)
	if err != nil {
		return nil, err
	}
	sizes := Sizes{}
	for _, s := range seqs {
		if Keep(s.Name) {
			sizes[s.Name] = strconv.FormatInt(s.Length, 10)
		}
	}
	return sizes, nil
}
