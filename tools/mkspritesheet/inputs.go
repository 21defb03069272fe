package main

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// readInputList reads a list of file names, one per line. Text after '#' is a
// comment, and blank lines are ignored.
func readInputList(filename string) ([]string, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	var names []string
	sc := bufio.NewScanner(fp)
	for sc.Scan() {
		line := sc.Bytes()
		if i := bytes.IndexByte(line, '#'); i != -1 {
			line = line[:i]
		}
		line = bytes.TrimSpace(line)
		if len(line) != 0 {
			names = append(names, string(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &fileError{filename, err}
	}
	return names, nil
}

// An input is an image file to add to the sprite sheet.
type input struct {
	name string // Name as given, used as the manifest key.
	path string // Path to read.
}

// filterInputs removes the output image and duplicate files from the inputs.
func filterInputs(inputs []input, output string) ([]input, error) {
	outabs, err := filepath.Abs(output)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(inputs))
	var r []input
	for _, in := range inputs {
		abs, err := filepath.Abs(in.path)
		if err != nil {
			return nil, err
		}
		if abs == outabs {
			logrus.WithField("file", in.name).Warn("skipping output file")
			continue
		}
		if seen[abs] {
			logrus.WithField("file", in.name).Warn("skipping duplicate input")
			continue
		}
		seen[abs] = true
		r = append(r, in)
	}
	if len(r) == 0 {
		return nil, errors.New("no input images")
	}
	return r, nil
}
