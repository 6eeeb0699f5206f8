package ioload

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
)

// streamRecords reads codex records from r one at a time and passes
// each to fn. The document is either a top-level JSON array of objects
// or a stream of concatenated objects; in both cases only one record
// is decoded into memory at a time, so the document may be arbitrarily
// large.
//
// Structural errors are fatal and returned as SourceParseError. An
// error returned by fn aborts the stream and is returned unchanged;
// while fn runs no further input is consumed, which is how the loader
// applies backpressure during batch flushes.
func streamRecords(r io.Reader, fn func(rawRecord) error) error {
	br := bufio.NewReader(r)

	first, err := peekByte(br)
	if err != nil {
		return SourceParseError(err)
	}

	dec := json.NewDecoder(br)

	if first == '[' {
		return streamArray(dec, fn)
	}
	return streamObjects(dec, fn)
}

// peekByte returns the first non-whitespace byte without consuming it.
func peekByte(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return 0, err
		}
		return b, nil
	}
}

func streamArray(dec *json.Decoder, fn func(rawRecord) error) error {
	// opening bracket
	if _, err := dec.Token(); err != nil {
		return SourceParseError(err)
	}

	for dec.More() {
		var rec rawRecord
		if err := dec.Decode(&rec); err != nil {
			return SourceParseError(err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}

	// closing bracket
	if _, err := dec.Token(); err != nil {
		return SourceParseError(err)
	}

	return nil
}

func streamObjects(dec *json.Decoder, fn func(rawRecord) error) error {
	for {
		var rec rawRecord
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return SourceParseError(err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
