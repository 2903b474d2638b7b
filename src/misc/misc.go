// contains some misc helper functions etc. for diversample
package misc

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// ErrorCheck is a function to throw error to the log and exit the program
func ErrorCheck(msg error) {
	if msg != nil {
		log.Fatalf("terminated\n\nERROR --> %v\n\n", msg)
	}
}

// StartLogging is a function to start the log...
func StartLogging(logFile string) *os.File {
	logPath := strings.Split(logFile, "/")
	joinedLogPath := strings.Join(logPath[:len(logPath)-1], "/")
	if len(logPath) > 1 {
		if _, err := os.Stat(joinedLogPath); os.IsNotExist(err) {
			if err := os.MkdirAll(joinedLogPath, 0700); err != nil {
				log.Fatal("can't create specified directory for log")
			}
		}
	}
	logFH, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Fatal(err)
	}
	return logFH
}

// CheckFile is a function to check that a file can be read
func CheckFile(file string) error {
	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %v", file)
		}
		return fmt.Errorf("can't access file (check permissions): %v", file)
	}
	return nil
}

// FileExtension returns the extension of an input file, ignoring a trailing .gz.
// The filename is split on its last dot; a file without an extension is an error.
// The fq synonym is reported as fastq.
func FileExtension(file string) (string, error) {
	base := strings.TrimSuffix(file, ".gz")
	idx := strings.LastIndex(base, ".")
	if idx < 0 || idx == len(base)-1 {
		return "", fmt.Errorf("input file does not appear to have a file extension: %v", file)
	}
	ext := base[idx+1:]
	if ext == "fq" {
		ext = "fastq"
	}
	if ext == "fa" {
		ext = "fasta"
	}
	return ext, nil
}

// WeightPath returns the companion weights path for an output file, leaving the supplied path untouched
func WeightPath(path string) string {
	return path + ".weights"
}
