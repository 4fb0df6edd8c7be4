package moneyfmt

import (
	"bytes"
	"fmt"
	"io"
	"iter"
)

// Write formats values with f and writes each on its own line.
func Write[T any](w io.Writer, f Formatter[T], values ...T) error {
	return WriteIter(w, f, func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	})
}

// WriteIter formats values from seq as they arrive. It stops at the first
// formatting or write error.
func WriteIter[T any](w io.Writer, f Formatter[T], seq iter.Seq[T]) error {
	var streamErr error
	seq(func(v T) bool {
		s, err := f.Format(v)
		if err != nil {
			streamErr = err
			return false
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// Marshal formats values and returns the bytes.
func Marshal[T any](f Formatter[T], values ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, values...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
