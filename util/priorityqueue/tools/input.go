package main

import (
	"bufio"
	"cmp"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/manuelroemer/NCommons-sub000/util/heap"
)

type entry struct {
	text   string
	number float64
}

type orderArgs struct {
	Numeric bool
	Reverse bool
}

// comparer orders entries so that larger entries have higher priority, or smaller ones when
// Reverse is set.
func (me orderArgs) comparer() heap.Comparer[entry] {
	compare := func(a, b entry) int {
		return cmp.Compare(a.text, b.text)
	}
	if me.Numeric {
		compare = func(a, b entry) int {
			if comp := cmp.Compare(a.number, b.number); comp != 0 {
				return comp
			}
			return cmp.Compare(a.text, b.text)
		}
	}

	if me.Reverse {
		return heap.Reverse[entry](compare)
	}
	return compare
}

func parseEntry(line string, numeric bool) (entry, error) {
	if !numeric {
		return entry{text: line}, nil
	}

	number, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return entry{}, errors.Wrapf(err, "line %q is not a number", line)
	}
	return entry{text: line, number: number}, nil
}

// readEntries yields one entry per line of reader. A read or parse error is yielded last.
func readEntries(reader io.Reader, numeric bool) iter.Seq2[entry, error] {
	return func(yield func(entry, error) bool) {
		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			item, err := parseEntry(scanner.Text(), numeric)
			if !yield(item, err) || err != nil {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(entry{}, errors.Wrap(err, "failed to read input"))
		}
	}
}

// openInputs opens every path, or returns stdin when there are none.
func openInputs(stdin io.Reader, paths []string) (readers []io.Reader, closeAll func(), _ error) {
	if len(paths) == 0 {
		return []io.Reader{stdin}, func() {}, nil
	}

	var files []*os.File
	closeAll = func() {
		for _, file := range files {
			_ = file.Close()
		}
	}

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, errors.Wrapf(err, "failed to open %q", path)
		}
		files = append(files, file)
		readers = append(readers, file)
	}

	return readers, closeAll, nil
}

func writeEntries(writer io.Writer, entries iter.Seq[entry]) (n int, _ error) {
	buffered := bufio.NewWriter(writer)
	for item := range entries {
		if _, err := buffered.WriteString(item.text + "\n"); err != nil {
			return n, errors.Wrap(err, "failed to write output")
		}
		n++
	}
	return n, errors.Wrap(buffered.Flush(), "failed to write output")
}
