// Package seqio reads and writes the newline-delimited decimal-integer
// sequence files used by the CLI driver and the data generator. It is not part of the core library; the core consumes only
// []int64/[]uint32 slices in memory.
package seqio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// ReadSequence reads filename line by line and parses each non-empty line
// as a decimal integer (empty lines are skipped; a line holding only
// whitespace is a parse error), returning the resulting sequence in file order.
func ReadSequence(filename string) ([]int64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var seq []int64
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seqio: line %d: %w", lineNum, err)
		}
		seq = append(seq, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return seq, nil
}

// WriteSequence writes seq to filename, one decimal integer per line.
func WriteSequence(filename string, seq []uint32) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, v := range seq {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return w.Flush()
}
