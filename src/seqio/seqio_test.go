package seqio

import (
	"bytes"
	"testing"
)

// helper to feed a set of lines through a builder and collect the records
func frameLines(builder *Builder, lines []string) []*Record {
	var records []*Record
	for _, line := range lines {
		if record := builder.AddLine([]byte(line)); record != nil {
			records = append(records, record)
		}
	}
	if record := builder.Flush(); record != nil {
		records = append(records, record)
	}
	return records
}

// FASTQ framing must yield one record per 4 lines, keeping the verbatim chunk
func TestFastqFraming(t *testing.T) {
	lines := []string{
		"@read1", "ACGTACGT", "+", "IIIIIIII",
		"@read2", "TTTTTTTT", "+", "IIIIIIII",
	}
	records := frameLines(NewBuilder(false), lines)
	if len(records) != 2 {
		t.Fatalf("framed %d records, want 2", len(records))
	}
	if !bytes.Equal(records[0].Seq, []byte("ACGTACGT")) {
		t.Fatalf("wrong sequence extracted: %q", records[0].Seq)
	}
	if !bytes.Equal(records[0].Chunk, []byte("@read1\nACGTACGT\n+\nIIIIIIII\n")) {
		t.Fatalf("chunk does not match the input record: %q", records[0].Chunk)
	}
}

// a record with a bad header or plus line is dropped and counted, later records still frame
func TestFastqMalformed(t *testing.T) {
	lines := []string{
		"read0", // missing @
		"@read1", "ACGT", "+", "IIII",
		"@read2", "ACGT", "noplus", "IIII",
		"@read3", "TTTT", "+", "IIII",
	}
	builder := NewBuilder(false)
	records := frameLines(builder, lines)
	if len(records) != 2 {
		t.Fatalf("framed %d records, want 2", len(records))
	}
	if builder.Skipped() != 2 {
		t.Fatalf("counted %d skips, want 2", builder.Skipped())
	}
	if !bytes.Equal(records[1].Seq, []byte("TTTT")) {
		t.Fatal("framing did not recover after a malformed record")
	}
}

// a record truncated at the end of the stream counts as malformed
func TestFastqTruncated(t *testing.T) {
	lines := []string{
		"@read1", "ACGT", "+", "IIII",
		"@read2", "ACGT",
	}
	builder := NewBuilder(false)
	records := frameLines(builder, lines)
	if len(records) != 1 {
		t.Fatalf("framed %d records, want 1", len(records))
	}
	if builder.Skipped() != 1 {
		t.Fatalf("counted %d skips, want 1", builder.Skipped())
	}
}

// FASTA framing must concatenate wrapped sequence lines and emit the final record on flush
func TestFastaFraming(t *testing.T) {
	lines := []string{
		">seq1 first sequence",
		"ACGT",
		"ACGT",
		">seq2",
		"TTTT",
	}
	records := frameLines(NewBuilder(true), lines)
	if len(records) != 2 {
		t.Fatalf("framed %d records, want 2", len(records))
	}
	if !bytes.Equal(records[0].Seq, []byte("ACGTACGT")) {
		t.Fatalf("wrapped sequence lines were not concatenated: %q", records[0].Seq)
	}
	if !bytes.Equal(records[0].Chunk, []byte(">seq1 first sequence\nACGT\nACGT\n")) {
		t.Fatalf("chunk does not match the input record: %q", records[0].Chunk)
	}
	if !bytes.Equal(records[1].Seq, []byte("TTTT")) {
		t.Fatal("the final record was not emitted on flush")
	}
}

// sequence data before the first chevron is malformed
func TestFastaMalformed(t *testing.T) {
	lines := []string{
		"ACGT",
		">seq1",
		"ACGT",
	}
	builder := NewBuilder(true)
	records := frameLines(builder, lines)
	if len(records) != 1 {
		t.Fatalf("framed %d records, want 1", len(records))
	}
	if builder.Skipped() != 1 {
		t.Fatalf("counted %d skips, want 1", builder.Skipped())
	}
}

// an entry with a header but no sequence lines is still a record (it hashes to the sentinel signature downstream)
func TestFastaHeaderOnly(t *testing.T) {
	records := frameLines(NewBuilder(true), []string{">seq1"})
	if len(records) != 1 {
		t.Fatalf("framed %d records, want 1", len(records))
	}
	if len(records[0].Seq) != 0 {
		t.Fatalf("header-only record should have an empty sequence: %q", records[0].Seq)
	}
}
