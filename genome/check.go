package genome

import "fmt"

// HG38URL is the GRCh38 analysis set users are pointed at when their data
// was aligned to a build that STR genotyping does not support.
const HG38URL = "https://ont-exd-int-s3-euwst1-epi2me-labs.s3.amazonaws.com/ref/" +
	"GCA_000001405.15_GRCh38_no_alt_analysis_set.fna.gz"

const (
	banner      = "#####################################################################\n"
	closeBanner = "####################################################################\n"
)

const unknownBuildMessage = banner +
	"# INPUT DATA PROBLEM\n" +
	"The genome build detected in the BAM is not compatible with this\n" +
	"workflow as it does not appear to be hg19/GRCh37, hg38/GRCh38 or T2TCHM13v2.\n" +
	"If you are trying to run this workflow with non-human data, please\n" +
	"consult the 'Genome compatibility and running the workflow on\n" +
	"non-human genomes' section of the README.\n" +
	closeBanner

const strBuildMessage = banner +
	"# INPUT DATA PROBLEM\n" +
	"The genome build detected in the BAM is not compatible with this\n" +
	"workflow.\n" +
	"Detected genome: %s, but genotyping STRs can only be\n" +
	"performed when aligned to build 38.\n" +
	"To perform STR calling, you need to run the workflow providing the\n" +
	"following reference genome to the --ref parameter:\n\n" +
	"%s\n\n" +
	"Alternatively, disable STR calling by setting --str false.\n" +
	closeBanner

// Verdict is the outcome of Check. Message is meant for the user and is
// empty when Bad is false.
type Verdict struct {
	Bad     bool
	Message string
}

// Check decides whether data aligned to build b can be used by a workflow
// run. str is set when the run genotypes short tandem repeats, which is only
// supported on hg38. The first failing rule determines the message.
func Check(b Build, str bool) Verdict {
	switch {
	case b == Unknown:
		return Verdict{Bad: true, Message: unknownBuildMessage}
	case str && b != HG38:
		return Verdict{Bad: true, Message: fmt.Sprintf(strBuildMessage, b, HG38URL)}
	}
	return Verdict{}
}
