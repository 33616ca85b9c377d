package main

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/grailbio/genomebuild/genome"
	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runMainEnv makes the test binary behave as bio-genome-build, so that exit
// codes can be checked from a child process.
const runMainEnv = "BIO_GENOME_BUILD_RUN_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) != "" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func writeListing(t *testing.T, path string, sizes genome.Sizes, extra ...string) {
	var names []string
	for name := range sizes {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s\t%s\t0\t0\n", name, sizes[name])
	}
	for _, line := range extra {
		b.WriteString(line + "\n")
	}
	require.NoError(t, ioutil.WriteFile(path, []byte(b.String()), 0644))
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	for _, test := range []struct {
		build genome.Build
		str   bool
	}{
		{genome.HG19, false},
		{genome.HG38, false},
		{genome.HG38, true},
		{genome.T2T, false},
	} {
		input := filepath.Join(tempDir, "chr_counts.txt")
		writeListing(t, input, genome.Table(test.build), "chrM\t16569\t0\t0", "*\t0\t0\t12")
		out := filepath.Join(tempDir, fmt.Sprintf("%s-%v.txt", test.build, test.str))
		v, err := run(ctx, runOpts{chrCounts: input, output: out, str: test.str})
		require.NoError(t, err)
		assert.False(t, v.Bad)
		data, err := ioutil.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, string(test.build), string(data))
	}
}

func TestRunIncompatible(t *testing.T) {
	ctx := context.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	input := filepath.Join(tempDir, "chr_counts.txt")
	writeListing(t, input, genome.Table(genome.HG19))
	out := filepath.Join(tempDir, "genome.txt")
	v, err := run(ctx, runOpts{chrCounts: input, output: out, str: true})
	require.NoError(t, err)
	assert.True(t, v.Bad)
	assert.Contains(t, v.Message, "Detected genome: hg19")
	assert.Contains(t, v.Message, "build 38")
	assert.Contains(t, v.Message, genome.HG38URL)
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRunUnknown(t *testing.T) {
	ctx := context.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	input := filepath.Join(tempDir, "chr_counts.txt")
	writeListing(t, input, nil,
		"chrUn_KN707606v1_decoy\t2200\t0\t0",
		"chr1_KI270706v1_random\t175055\t0\t0",
		"HLA-A*01:01:01:01\t3503\t0\t0")
	out := filepath.Join(tempDir, "genome.txt")
	v, err := run(ctx, runOpts{chrCounts: input, output: out})
	require.NoError(t, err)
	assert.True(t, v.Bad)
	assert.Contains(t, v.Message, "does not appear to be hg19/GRCh37, hg38/GRCh38 or T2TCHM13v2")
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRunMissingInput(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	_, err := run(context.Background(), runOpts{
		chrCounts: filepath.Join(tempDir, "missing.txt"),
		output:    filepath.Join(tempDir, "genome.txt"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

// runMain runs bio-genome-build in a child process and returns its exit
// code and stderr.
func runMain(t *testing.T, args ...string) (int, string) {
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), runMainEnv+"=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return 0, stderr.String()
	}
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "run %v: %v", args, err)
	return exitErr.ExitCode(), stderr.String()
}

func TestExitStatus(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	input := filepath.Join(tempDir, "chr_counts.txt")
	writeListing(t, input, genome.Table(genome.HG19))
	out := filepath.Join(tempDir, "genome.txt")

	code, _ := runMain(t, "--chr_counts", input, "-o", out)
	require.Equal(t, 0, code)
	data, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hg19", string(data))

	code, stderr := runMain(t, "--chr_counts", input, "--output", out, "--str")
	assert.Equal(t, exitDataErr, code)
	assert.Contains(t, stderr, "build 38")
	data, err = ioutil.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hg19", string(data))

	decoys := filepath.Join(tempDir, "decoys.txt")
	writeListing(t, decoys, nil, "chrUn_KN707606v1_decoy\t2200\t0\t0")
	code, stderr = runMain(t, "--chr_counts", decoys, "-o", filepath.Join(tempDir, "decoys.out"))
	assert.Equal(t, exitDataErr, code)
	assert.Contains(t, stderr, "INPUT DATA PROBLEM")
	_, err = os.Stat(filepath.Join(tempDir, "decoys.out"))
	assert.True(t, os.IsNotExist(err))

	code, _ = runMain(t, "-o", out)
	assert.NotEqual(t, 0, code)
}
