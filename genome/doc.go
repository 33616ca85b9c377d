// Package genome determines which human reference build (hg19, hg38 or
// T2T-CHM13v2) a set of sequences was aligned against, by comparing
// per-chromosome lengths with the published lengths of each build.
//
// The lengths come from an index listing such as a samtools .fai, the @SQ
// lines of a SAM/BAM header, or a FASTA file. Only recognized chromosome
// names take part in the comparison (see Keep), and the comparison is exact:
// every name and every length must agree with exactly one build.
package genome
