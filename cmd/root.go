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
	"os"

	"github.com/spf13/cobra"

	"github.com/diversample/diversample/src/version"
)

// the command line arguments
var (
	profiling *bool // create profile for go pprof
)

// RootCmd represents the base command
var RootCmd = &cobra.Command{
	Use:     "diversample <sample_size> <SE|I|PE> <input...> <output...>",
	Version: version.GetVersion(),
	Short:   "sample a diversity-preserving subset of reads from a FASTQ/FASTA stream",
	Long: `
#####################################################################################
		DIVERSAMPLE: on-line DIVERsity SAMPLEr for sequence reads
#####################################################################################

 diversample selects a fixed-size subset of reads from a streaming FASTQ or FASTA
 input. Each read is sketched with MinHash and used to query-and-update a RACE
 sketch, giving an on-line kernel density estimate over the reads seen so far.
 Reads with rare k-mer content receive high weights and are favoured by a weighted
 reservoir, so the retained subset covers the read-space more evenly than a
 uniform draw.

 Single-end (SE), interleaved (I) and paired-end (PE) inputs are supported. PE
 mode takes two input files and two output files; the retained mates stay
 aligned between the two outputs. Every output file gains a companion
 <output>.weights file recording the weight and KDE of each retained record.`,
	Args: cobra.MinimumNArgs(4),
}

/*
  A function to run the root command, printing any error and exiting with status 1
*/
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

/*
  A function to initalise the command line arguments
*/
func init() {
	profiling = RootCmd.PersistentFlags().Bool("profiling", false, "create the files needed to profile diversample using the go tool pprof")
	RootCmd.Run = func(cmd *cobra.Command, args []string) {
		runSample(args)
	}
}
