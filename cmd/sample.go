// Copyright © 2019 the diversample authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/pkg/profile"

	"github.com/diversample/diversample/src/misc"
	"github.com/diversample/diversample/src/pipeline"
	"github.com/diversample/diversample/src/version"
)

// the command line arguments
var (
	hashRange   *int   // hash range for each sketch repetition (B)
	repetitions *int   // number of sketch repetitions (R)
	hashPower   *int   // number of MinHashes per repetition (p)
	kmerSize    *int   // size of the k-mers hashed by the extractor
	seed        *int64 // seed for the hash functions and the reservoir RNG
	plotSample  *bool  // plot the retained sample
)

/*
  A function to initialise the command line arguments
*/
func init() {
	hashRange = RootCmd.Flags().Int("range", 10000, "hash range for each sketch repetition (B)")
	repetitions = RootCmd.Flags().Int("reps", 100, "number of sketch repetitions (R)")
	hashPower = RootCmd.Flags().Int("hashes", 1, "number of MinHashes per sketch repetition (p)")
	kmerSize = RootCmd.Flags().IntP("kmerSize", "k", 16, "size of each MinHash k-mer")
	seed = RootCmd.Flags().Int64("seed", 0, "random seed for the hash functions and the reservoir (default: wall clock)")
	plotSample = RootCmd.Flags().Bool("plot", false, "plot the weight/KDE distribution of the retained sample")
}

/*
  A function to check user supplied parameters and assemble the runtime info
*/
func sampleParamCheck(args []string) (*pipeline.Info, error) {
	sampleSize, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("could not parse <sample_size>: %v", args[0])
	}
	if sampleSize <= 0 {
		return nil, fmt.Errorf("invalid value for <sample_size>: %d", sampleSize)
	}

	// the format decides how many input/output files we expect
	format := args[1]
	var inputFiles, outputFiles []string
	switch format {
	case "SE", "I":
		if len(args) != 4 {
			return nil, fmt.Errorf("%v format needs one input and one output file", format)
		}
		inputFiles = []string{args[2]}
		outputFiles = []string{args[3]}
	case "PE":
		if len(args) != 6 {
			return nil, fmt.Errorf("for paired-end reads, please specify the input and output files as: input1 input2 output1 output2")
		}
		inputFiles = []string{args[2], args[3]}
		outputFiles = []string{args[4], args[5]}
	default:
		return nil, fmt.Errorf("invalid format, please specify either SE, PE, or I: %v", format)
	}

	// check the input files and their extensions
	extension := ""
	for _, inputFile := range inputFiles {
		if err := misc.CheckFile(inputFile); err != nil {
			return nil, err
		}
		ext, err := misc.FileExtension(inputFile)
		if err != nil {
			return nil, err
		}
		if ext != "fasta" && ext != "fastq" {
			return nil, fmt.Errorf("unknown file extension (please use .fasta or .fastq): %v", inputFile)
		}
		if extension != "" && ext != extension {
			return nil, fmt.Errorf("input files have mismatched formats: %v vs %v", extension, ext)
		}
		extension = ext
	}

	// check the sketch and hash parameters
	if *hashRange <= 0 {
		return nil, fmt.Errorf("invalid value for --range: %d", *hashRange)
	}
	if *repetitions <= 0 {
		return nil, fmt.Errorf("invalid value for --reps: %d", *repetitions)
	}
	if *hashPower <= 0 {
		return nil, fmt.Errorf("invalid value for --hashes: %d", *hashPower)
	}
	if *kmerSize <= 0 {
		return nil, fmt.Errorf("invalid value for --kmerSize: %d", *kmerSize)
	}

	// the seed defaults to the wall clock so that repeat runs differ unless pinned
	runSeed := *seed
	if !RootCmd.Flags().Changed("seed") {
		runSeed = time.Now().UnixNano()
	}

	return &pipeline.Info{
		Version:     version.GetVersion(),
		SampleSize:  sampleSize,
		Format:      format,
		KmerSize:    *kmerSize,
		HashRange:   *hashRange,
		Repetitions: *repetitions,
		HashPower:   *hashPower,
		Seed:        runSeed,
		Fasta:       extension == "fasta",
		InputFiles:  inputFiles,
		OutputFiles: outputFiles,
		Plot:        *plotSample,
		Profiling:   *profiling,
	}, nil
}

/*
  The main function for the sample command
*/
func runSample(args []string) {
	// set up logging
	logFH := misc.StartLogging("diversample.log")
	defer logFH.Close()
	log.SetOutput(logFH)

	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	log.Printf("starting diversample (version %v)", version.GetVersion())

	// check the supplied parameters and then log some stuff
	log.Printf("checking parameters...")
	info, err := sampleParamCheck(args)
	misc.ErrorCheck(err)
	log.Printf("\tsample size: %d", info.SampleSize)
	log.Printf("\tread format: %v", info.Format)
	log.Printf("\tk-mer size: %d", info.KmerSize)
	log.Printf("\tsketch repetitions: %d", info.Repetitions)
	log.Printf("\tsketch hash range: %d", info.HashRange)
	log.Printf("\tMinHashes per repetition: %d", info.HashPower)
	log.Printf("\trandom seed: %d", info.Seed)
	for _, file := range info.InputFiles {
		log.Printf("\tinput file: %v", file)
	}
	for _, file := range info.OutputFiles {
		log.Printf("\toutput file: %v", file)
	}

	// open the output files and their weight companions
	sampleWriters := make([]io.Writer, len(info.OutputFiles))
	weightWriters := make([]io.Writer, len(info.OutputFiles))
	for i, outputFile := range info.OutputFiles {
		sampleFH, err := os.Create(outputFile)
		misc.ErrorCheck(err)
		defer sampleFH.Close()
		weightFH, err := os.Create(misc.WeightPath(outputFile))
		misc.ErrorCheck(err)
		defer weightFH.Close()
		sampleWriters[i] = sampleFH
		weightWriters[i] = weightFH
	}

	// create the pipeline
	log.Printf("initialising sampling pipeline...")
	samplePipeline := pipeline.NewPipeline()
	sampler, err := pipeline.NewSampler(info)
	misc.ErrorCheck(err)
	sampler.ConnectOutput(sampleWriters, weightWriters)

	// arrange the processes for the requested read format
	if info.Format == "PE" {
		dataStream1 := pipeline.NewDataStreamer(info)
		dataStream2 := pipeline.NewDataStreamer(info)
		dataStream1.Connect(info.InputFiles[0])
		dataStream2.Connect(info.InputFiles[1])
		recordHandler1 := pipeline.NewRecordHandler(info)
		recordHandler2 := pipeline.NewRecordHandler(info)
		recordHandler1.Connect(dataStream1)
		recordHandler2.Connect(dataStream2)
		sampler.ConnectPaired(recordHandler1, recordHandler2)
		samplePipeline.AddProcesses(dataStream1, recordHandler1, dataStream2, recordHandler2, sampler)
	} else {
		dataStream := pipeline.NewDataStreamer(info)
		dataStream.Connect(info.InputFiles[0])
		recordHandler := pipeline.NewRecordHandler(info)
		recordHandler.Connect(dataStream)
		sampler.Connect(recordHandler)
		samplePipeline.AddProcesses(dataStream, recordHandler, sampler)
	}
	log.Printf("\tnumber of processes added to the sampling pipeline: %d\n", samplePipeline.GetNumProcesses())

	// run it
	samplePipeline.Run()
	log.Println("finished")
}
