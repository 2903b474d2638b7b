package pipeline

// Info stores the runtime information for a sampling run
type Info struct {
	Version     string
	SampleSize  int
	Format      string // SE, I or PE
	KmerSize    int
	HashRange   int
	Repetitions int
	HashPower   int
	Seed        int64
	Fasta       bool // true if the input is FASTA, otherwise FASTQ framing is used
	InputFiles  []string
	OutputFiles []string
	Plot        bool
	Profiling   bool
}

// SignatureLength is a method to return the length of the raw MinHash signature (hashes per repetition x repetitions)
func (Info *Info) SignatureLength() int {
	return Info.Repetitions * Info.HashPower
}
