// Package logutil provides logging utilities.
//
// Loggers obtained from GetLogger are silent by default; they only write
// somewhere after SetOutput or SetOutputFile has been called. This allows
// debug logging to be enabled globally with a command-line flag.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with a prefix.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the new io.Writer. If the old output was a file opened by SetOutputFile,
// it is closed.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger
// to the named file. If the old output was a file opened by SetOutputFile,
// it is closed. The new file is truncated. SetOutputFile("") is equivalent
// to SetOutput(io.Discard).
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %v", fname, err)
	}
	mu.Lock()
	defer mu.Unlock()
	if outFile != nil {
		outFile.Close()
	}
	out, outFile = file, file
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return nil
}
