// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

// See doc.go for documentation
import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/genomebuild/genome"
)

// exitDataErr is EX_DATAERR from sysexits.h.
const exitDataErr = 65

var (
	chrCounts = flag.String("chr_counts", "", "Sequence name/length listing, e.g. output of samtools idxstats or faidx; SAM, BAM and FASTA files are also accepted")
	output    string
	str       = flag.Bool("str", false, "STR genotyping is requested; only hg38 is accepted")
	format    = flag.String("format", genome.FormatAuto.String(), "Format of --chr_counts: 'auto', 'listing', 'sam', 'bam' or 'fasta'. 'auto' guesses from the file suffix")
)

func init() {
	flag.StringVar(&output, "output", "", "Path the detected genome build is written to")
	flag.StringVar(&output, "o", "", "Shorthand for --output")
	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
}

type runOpts struct {
	chrCounts string
	output    string
	str       bool
	format    genome.Format
}

// run detects the genome build of opts.chrCounts and, if the build is usable,
// writes it to opts.output. Data problems are reported through the returned
// Verdict, in which case nothing is written; other failures are errors.
func run(ctx context.Context, opts runOpts) (genome.Verdict, error) {
	sizes, err := genome.ReadSizesPath(ctx, opts.chrCounts, opts.format)
	if err != nil {
		return genome.Verdict{}, err
	}
	build := genome.Match(sizes)
	log.Printf("%s: %d recognized sequences, genome build %q", opts.chrCounts, len(sizes), build)
	if v := genome.Check(build, opts.str); v.Bad {
		return v, nil
	}
	return genome.Verdict{}, writeBuild(ctx, opts.output, build)
}

func writeBuild(ctx context.Context, path string, build genome.Build) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "create", path)
	}
	defer func() {
		if e := out.Close(ctx); e != nil && err == nil {
			err = errors.E(e, "close", path)
		}
	}()
	if _, err = io.WriteString(out.Writer(ctx), string(build)); err != nil {
		return errors.E(err, "write", path)
	}
	return nil
}

func bioGenomeBuildUsage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --chr_counts path -o path [--str] [--format fmt]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bioGenomeBuildUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() > 0 {
		log.Fatalf("unexpected positional arguments: '%s'", strings.Join(flag.Args(), " "))
	}
	if *chrCounts == "" {
		log.Fatalf("--chr_counts is required")
	}
	if output == "" {
		log.Fatalf("-o/--output is required")
	}
	inputFormat, err := genome.ParseFormat(*format)
	if err != nil {
		log.Fatalf("--format: %v", err)
	}
	opts := runOpts{
		chrCounts: *chrCounts,
		output:    output,
		str:       *str,
		format:    inputFormat,
	}
	v, err := run(vcontext.Background(), opts)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if v.Bad {
		fmt.Fprint(os.Stderr, v.Message)
		shutdown()
		os.Exit(exitDataErr)
	}
	log.Debug.Printf("exiting")
}
