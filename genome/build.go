package genome

// Build names a reference genome assembly. The zero value, Unknown, means the
// lengths did not match any supported build.
type Build string

const (
	Unknown Build = ""
	HG19    Build = "hg19"
	HG38    Build = "hg38"
	T2T     Build = "T2T"
)

// Builds lists the supported builds in the order Match tries them.
var Builds = []Build{HG19, HG38, T2T}

// Sizes maps a sequence name to its length, written as a decimal string.
// Lengths are compared as strings, never parsed.
type Sizes map[string]string

// Equal reports whether s and o hold the same names with the same lengths.
func (s Sizes) Equal(o Sizes) bool {
	if len(s) != len(o) {
		return false
	}
	for name, length := range s {
		if l, ok := o[name]; !ok || l != length {
			return false
		}
	}
	return true
}

var tables = map[Build]Sizes{
	HG19: {
		"chr1":  "249250621",
		"chr2":  "243199373",
		"chr3":  "198022430",
		"chr4":  "191154276",
		"chr5":  "180915260",
		"chr6":  "171115067",
		"chr7":  "159138663",
		"chr8":  "146364022",
		"chr9":  "141213431",
		"chr10": "135534747",
		"chr11": "135006516",
		"chr12": "133851895",
		"chr13": "115169878",
		"chr14": "107349540",
		"chr15": "102531392",
		"chr16": "90354753",
		"chr17": "81195210",
		"chr18": "78077248",
		"chr19": "59128983",
		"chr20": "63025520",
		"chr21": "48129895",
		"chr22": "51304566",
		"chrX":  "155270560",
		"chrY":  "59373566",
	},
	HG38: {
		"chr1":  "248956422",
		"chr2":  "242193529",
		"chr3":  "198295559",
		"chr4":  "190214555",
		"chr5":  "181538259",
		"chr6":  "170805979",
		"chr7":  "159345973",
		"chr8":  "145138636",
		"chr9":  "138394717",
		"chr10": "133797422",
		"chr11": "135086622",
		"chr12": "133275309",
		"chr13": "114364328",
		"chr14": "107043718",
		"chr15": "101991189",
		"chr16": "90338345",
		"chr17": "83257441",
		"chr18": "80373285",
		"chr19": "58617616",
		"chr20": "64444167",
		"chr21": "46709983",
		"chr22": "50818468",
		"chrX":  "156040895",
		"chrY":  "57227415",
	},
	// T2T-CHM13v2.0 uses RefSeq accessions: NC_060925.1 is chr1, ...,
	// NC_060947.1 is chrX and NC_060948.1 is chrY.
	T2T: {
		"NC_060925.1": "248387328",
		"NC_060926.1": "242696752",
		"NC_060927.1": "201105948",
		"NC_060928.1": "193574945",
		"NC_060929.1": "182045439",
		"NC_060930.1": "172126628",
		"NC_060931.1": "160567428",
		"NC_060932.1": "146259331",
		"NC_060933.1": "150617247",
		"NC_060934.1": "134758134",
		"NC_060935.1": "135127769",
		"NC_060936.1": "133324548",
		"NC_060937.1": "113566686",
		"NC_060938.1": "101161492",
		"NC_060939.1": "99753195",
		"NC_060940.1": "96330374",
		"NC_060941.1": "84276897",
		"NC_060942.1": "80542538",
		"NC_060943.1": "61707364",
		"NC_060944.1": "66210255",
		"NC_060945.1": "45090682",
		"NC_060946.1": "51324926",
		"NC_060947.1": "154259566",
		"NC_060948.1": "62460029",
	},
}

// Table returns a copy of the chromosome lengths of the given build, or nil
// if b is not one of Builds.
func Table(b Build) Sizes {
	t, ok := tables[b]
	if !ok {
		return nil
	}
	c := make(Sizes, len(t))
	for name, length := range t {
		c[name] = length
	}
	return c
}

// Match returns the build whose chromosome table is exactly equal to
// observed. Partial overlap is not a match: a missing or extra name, or a
// single differing length, rules a build out. Match returns Unknown if
// observed is empty or matches no build.
func Match(observed Sizes) Build {
	if len(observed) == 0 {
		return Unknown
	}
	for _, b := range Builds {
		if tables[b].Equal(observed) {
			return b
		}
	}
	return Unknown
}
