// Package persist defines the tiny on-disk container the CLI tools use to
// save and load a packed word array between runs. The packed-buffer format
// itself intentionally has no on-disk contract of its own; this container
// is a tool-level convenience layered on top of it so the CLI has somewhere
// to put a buffer between invocations.
//
// Container layout: a 4-byte magic, a little-endian uint32 word count,
// then that many little-endian uint32 words.
package persist

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

var containerMagic = [4]byte{'B', 'P', 'K', '1'}

// Save writes words to filename in the container format described above.
func Save(filename string, words []uint32) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Write(containerMagic[:]); err != nil {
		return err
	}
	if err := binary.Write(file, binary.LittleEndian, uint32(len(words))); err != nil {
		return err
	}
	return binary.Write(file, binary.LittleEndian, words)
}

// Load reads a packed word array previously written by Save.
func Load(filename string) ([]uint32, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var magic [4]byte
	if _, err := io.ReadFull(file, magic[:]); err != nil {
		return nil, err
	}
	if magic != containerMagic {
		return nil, fmt.Errorf("persist: %s is not a bitpack container", filename)
	}

	var count uint32
	if err := binary.Read(file, binary.LittleEndian, &count); err != nil {
		return nil, err
	}

	words := make([]uint32, count)
	if err := binary.Read(file, binary.LittleEndian, words); err != nil {
		return nil, err
	}
	return words, nil
}
