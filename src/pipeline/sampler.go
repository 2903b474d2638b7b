package pipeline

/*
 this part of the pipeline will stream the input, frame it into records and run the diversity sampler over them
*/

import (
	"bufio"
	"compress/gzip"
	"io"
	"log"
	"os"
	"strings"

	"github.com/diversample/diversample/src/minhash"
	"github.com/diversample/diversample/src/misc"
	"github.com/diversample/diversample/src/race"
	"github.com/diversample/diversample/src/reporting"
	"github.com/diversample/diversample/src/reservoir"
	"github.com/diversample/diversample/src/seqio"
)

// DataStreamer is a pipeline process that streams raw lines from one input file
type DataStreamer struct {
	info   *Info
	input  string
	output chan []byte
}

// NewDataStreamer is the constructor
func NewDataStreamer(info *Info) *DataStreamer {
	return &DataStreamer{info: info, output: make(chan []byte, BUFFERSIZE)}
}

// Connect is the method to connect the DataStreamer to an input file
func (proc *DataStreamer) Connect(input string) {
	proc.input = input
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *DataStreamer) Run() {
	defer close(proc.output)
	fh, err := os.Open(proc.input)
	misc.ErrorCheck(err)
	defer fh.Close()

	// handle gzipped input
	var scanner *bufio.Scanner
	if strings.HasSuffix(proc.input, ".gz") {
		gz, err := gzip.NewReader(fh)
		misc.ErrorCheck(err)
		defer gz.Close()
		scanner = bufio.NewScanner(gz)
	} else {
		scanner = bufio.NewScanner(fh)
	}
	for scanner.Scan() {
		// important: copy content of scan to a new slice before sending, this avoids race conditions from concurrent slice access
		proc.output <- append([]byte(nil), scanner.Bytes()...)
	}

	// a mid-stream read failure ends the stream; records accepted so far are still drained downstream
	if scanner.Err() != nil {
		log.Printf("\tinput stream error, stopping early: %v\n", scanner.Err())
	}
}

// RecordHandler is a pipeline process that frames raw lines into records
type RecordHandler struct {
	info   *Info
	input  chan []byte
	output chan *seqio.Record
}

// NewRecordHandler is the constructor
func NewRecordHandler(info *Info) *RecordHandler {
	return &RecordHandler{info: info, output: make(chan *seqio.Record, BUFFERSIZE)}
}

// Connect is the method to join the input of this process with the output of a DataStreamer
func (proc *RecordHandler) Connect(previous *DataStreamer) {
	proc.input = previous.output
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *RecordHandler) Run() {
	defer close(proc.output)
	builder := seqio.NewBuilder(proc.info.Fasta)
	for line := range proc.input {
		if record := builder.AddLine(line); record != nil {
			proc.output <- record
		}
	}
	if record := builder.Flush(); record != nil {
		proc.output <- record
	}
	if skipped := builder.Skipped(); skipped != 0 {
		log.Printf("\tskipped malformed input: %d record(s)\n", skipped)
	}
}

// Sampler is the pipeline process that runs the diversity sampler - it queries and updates the RACE sketch for every record and offers each record to the reservoir(s)
type Sampler struct {
	info       *Info
	input1     chan *seqio.Record
	input2     chan *seqio.Record
	hash       *minhash.SequenceMinHash
	sketch     *race.RACE
	reservoirs []*reservoir.Reservoir
	samples    []io.Writer
	weights    []io.Writer
	signature  []int32
	buckets    []int
	processed  int
}

// NewSampler is the constructor - it builds the extractor, the sketch and one reservoir per output file. Both PE reservoirs take the same seed so that they accept identically and the output files stay aligned mate-for-mate.
func NewSampler(info *Info) (*Sampler, error) {
	hash, err := minhash.NewSequenceMinHash(info.SignatureLength(), uint64(info.Seed))
	if err != nil {
		return nil, err
	}
	sketch, err := race.NewRACE(info.Repetitions, info.HashRange)
	if err != nil {
		return nil, err
	}
	reservoirs := make([]*reservoir.Reservoir, len(info.OutputFiles))
	for i := range reservoirs {
		res, err := reservoir.NewReservoir(info.SampleSize, info.Seed)
		if err != nil {
			return nil, err
		}
		reservoirs[i] = res
	}
	return &Sampler{
		info:       info,
		hash:       hash,
		sketch:     sketch,
		reservoirs: reservoirs,
		signature:  make([]int32, info.SignatureLength()),
		buckets:    make([]int, info.Repetitions),
	}, nil
}

// Connect is the method to join the input of this process with the output of a RecordHandler (SE and interleaved data)
func (proc *Sampler) Connect(previous *RecordHandler) {
	proc.input1 = previous.output
}

// ConnectPaired is the method to join the inputs of this process with two RecordHandlers (PE data)
func (proc *Sampler) ConnectPaired(previous1, previous2 *RecordHandler) {
	proc.input1 = previous1.output
	proc.input2 = previous2.output
}

// ConnectOutput is the method to attach the sample and weight sinks, one pair per reservoir
func (proc *Sampler) ConnectOutput(samples, weights []io.Writer) {
	proc.samples = samples
	proc.weights = weights
}

// GetReadStats is a method to return the number of records processed and the number retained per reservoir
func (proc *Sampler) GetReadStats() (int, []int) {
	retained := make([]int, len(proc.reservoirs))
	for i, res := range proc.reservoirs {
		retained[i] = res.Len()
	}
	return proc.processed, retained
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *Sampler) Run() {
	log.Printf("now streaming reads...")
	switch proc.info.Format {
	case "SE":
		for record := range proc.input1 {
			proc.offer(record.Seq, record.Chunk)
		}
	case "I":
		// interleaved mates share one sketch query and one reservoir decision
		var pending *seqio.Record
		for record := range proc.input1 {
			if pending == nil {
				pending = record
				continue
			}
			seq := append(append([]byte(nil), pending.Seq...), record.Seq...)
			chunk := append(append([]byte(nil), pending.Chunk...), record.Chunk...)
			proc.offer(seq, chunk)
			pending = nil
		}
		if pending != nil {
			log.Printf("\tskipped unpaired trailing record\n")
		}
	case "PE":
		for {
			record1, ok1 := <-proc.input1
			record2, ok2 := <-proc.input2
			if !ok1 || !ok2 {
				if ok1 != ok2 {
					log.Printf("\tinput files hold unequal record counts - trailing records ignored\n")
					proc.flushPaired(ok1, ok2)
				}
				break
			}
			seq := append(append([]byte(nil), record1.Seq...), record2.Seq...)
			proc.offer(seq, record1.Chunk, record2.Chunk)
		}
	}
	log.Printf("\tnumber of records processed: %d\n", proc.processed)

	// the stream is done, drain the reservoir(s)
	for i, res := range proc.reservoirs {
		log.Printf("\tnumber of records retained in reservoir %d: %d\n", i+1, res.Len())
		if proc.info.Plot {
			weights, kdes := res.Report()
			misc.ErrorCheck(reporting.PlotSample(weights, kdes, proc.info.OutputFiles[i]+".png"))
		}
		misc.ErrorCheck(res.Drain(proc.samples[i], proc.weights[i]))
	}
}

// offer runs one record through the sampler: signature, buckets, KDE query-then-update, weight, reservoir offer(s)
func (proc *Sampler) offer(seq []byte, chunks ...[]byte) {
	misc.ErrorCheck(proc.hash.GetHash(proc.info.KmerSize, seq, proc.signature))
	race.Rehash(proc.signature, proc.buckets, proc.info.Repetitions, proc.info.HashPower, proc.info.HashRange)
	kde := proc.sketch.QueryAndAdd(proc.buckets)

	// later records see more sketch mass, so scale by the stream position to avoid over-concentrating on early reads
	proc.processed++
	weight := float64(proc.processed) / (kde + 1)
	for i, chunk := range chunks {
		proc.reservoirs[i].Put(chunk, weight, kde)
	}
}

// flushPaired empties whichever paired input channel is still open so its upstream processes can finish
func (proc *Sampler) flushPaired(ok1, ok2 bool) {
	if ok1 {
		for range proc.input1 {
		}
	}
	if ok2 {
		for range proc.input2 {
		}
	}
}
