/*Command bio-genome-build reports which human reference build (hg19, hg38
  or T2T) a sample was aligned to, based on the lengths of its chromosomes.

  The lengths are read from --chr_counts, which is normally the output of
  "samtools idxstats" or a .fai index, but may also be a SAM/BAM file (only
  the header is read) or a FASTA file. The build name is written to
  --output.

  If the lengths match none of the builds, or --str is set and the build is
  not hg38 (STR genotyping only supports hg38), an explanation is written to
  stderr, --output is left untouched and the exit status is 65 (EX_DATAERR).

  Usage: bio-genome-build --chr_counts chr_counts.txt -o genome.txt [--str]
*/
package main
