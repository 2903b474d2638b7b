/*
	the seqio package contains the record framing used by the sampler - it turns a stream of raw FASTQ/FASTA lines into records, keeping the verbatim text chunk so that retained records can be copied to the output unchanged
*/
package seqio

// Record holds a single input record - the nucleotide sequence used for sketching and the verbatim text chunk emitted on retention
type Record struct {
	Seq   []byte
	Chunk []byte
}

// Builder frames raw input lines into records. One Builder handles one input stream; malformed records are dropped and counted rather than terminating the stream.
type Builder struct {
	fasta   bool
	lines   [][]byte
	skipped int
}

// NewBuilder is the constructor for a Builder - fasta selects chevron framing, otherwise 4-line FASTQ framing is used
func NewBuilder(fasta bool) *Builder {
	return &Builder{fasta: fasta}
}

// Skipped is a method to return the number of malformed records dropped so far
func (Builder *Builder) Skipped() int {
	return Builder.skipped
}

// AddLine is a method to feed the next raw line to the builder. A completed record is returned, or nil if the line did not complete one.
func (Builder *Builder) AddLine(line []byte) *Record {
	if Builder.fasta {
		return Builder.addFastaLine(line)
	}
	return Builder.addFastqLine(line)
}

// Flush is a method to finish the stream, returning the final record (FASTA only) or nil. A partially collected FASTQ record counts as malformed.
func (Builder *Builder) Flush() *Record {
	if Builder.fasta {
		if len(Builder.lines) == 0 {
			return nil
		}
		record := Builder.buildFasta()
		Builder.lines = nil
		return record
	}
	if len(Builder.lines) != 0 {
		Builder.skipped++
		Builder.lines = nil
	}
	return nil
}

// addFastqLine collects 4 lines and builds a record from them
func (Builder *Builder) addFastqLine(line []byte) *Record {

	// a record must begin with @ - drop lines until one does
	if len(Builder.lines) == 0 {
		if len(line) == 0 || line[0] != '@' {
			Builder.skipped++
			return nil
		}
	}
	Builder.lines = append(Builder.lines, line)
	if len(Builder.lines) < 4 {
		return nil
	}

	// check the plus line before accepting the record
	l2, l3 := Builder.lines[1], Builder.lines[2]
	if len(l3) == 0 || l3[0] != '+' {
		Builder.skipped++
		Builder.lines = nil
		return nil
	}
	record := &Record{
		Seq:   append([]byte(nil), l2...),
		Chunk: joinLines(Builder.lines),
	}
	Builder.lines = nil
	return record
}

// addFastaLine collects a chevron header plus any number of sequence lines; a record completes when the next header arrives
func (Builder *Builder) addFastaLine(line []byte) *Record {
	if len(line) != 0 && line[0] == '>' {
		var record *Record
		if len(Builder.lines) != 0 {
			record = Builder.buildFasta()
		}
		Builder.lines = [][]byte{line}
		return record
	}

	// sequence data before any header is malformed
	if len(Builder.lines) == 0 {
		Builder.skipped++
		return nil
	}
	Builder.lines = append(Builder.lines, line)
	return nil
}

// buildFasta assembles the pending FASTA lines into a record
func (Builder *Builder) buildFasta() *Record {
	var seq []byte
	for _, line := range Builder.lines[1:] {
		seq = append(seq, line...)
	}
	return &Record{
		Seq:   seq,
		Chunk: joinLines(Builder.lines),
	}
}

// joinLines rebuilds the verbatim chunk, terminating every line
func joinLines(lines [][]byte) []byte {
	size := 0
	for _, line := range lines {
		size += len(line) + 1
	}
	chunk := make([]byte, 0, size)
	for _, line := range lines {
		chunk = append(chunk, line...)
		chunk = append(chunk, '\n')
	}
	return chunk
}
