// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package csvload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/duel"
)

var (
	ErrMalformed = errors.New("malformed csv")
	ErrNoHeader  = errors.New("missing header line")
)

// Ballot reads a ballot file whose first skip columns are voter metadata.
func Ballot(r io.Reader, skip int) (*ballot.Ballot, error) {
	if skip < 0 {
		return nil, fmt.Errorf("negative skip %d: %w", skip, ErrMalformed)
	}
	records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	header := records[0].fields
	if len(header) < skip {
		return nil, fmt.Errorf("header has %d columns, %d skipped: %w",
			len(header), skip, ballot.ErrDimensionMismatch)
	}

	labels := trimAll(header[skip:])
	rows := records[1:]
	b, err := ballot.New(labels, len(rows))
	if err != nil {
		return nil, err
	}

	for v, row := range rows {
		line, rec := row.line, row.fields
		if len(rec) != skip+len(labels) {
			return nil, fmt.Errorf("line %d: %d columns, want %d: %w",
				line, len(rec), skip+len(labels), ballot.ErrDimensionMismatch)
		}
		if skip > 0 {
			if err := b.SetMeta(v, trimAll(rec[:skip])); err != nil {
				return nil, err
			}
		}
		for c, cell := range rec[skip:] {
			rank, ok, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", line, skip+c+1, err)
			}
			if !ok {
				continue
			}
			if err := b.Set(v, c, rank); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
	}
	return b, nil
}

// Duel reads a square duel file: a header of labels then one row per
// candidate. Empty cells count as zero.
func Duel(r io.Reader) (*duel.Matrix, error) {
	records, err := readAll(r)
	if err != nil {
		return nil, err
	}

	labels := trimAll(records[0].fields)
	rows := make([][]int, 0, len(records)-1)
	for _, r := range records[1:] {
		line, rec := r.line, r.fields
		row := make([]int, len(rec))
		for j, cell := range rec {
			v, ok, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", line, j+1, err)
			}
			if ok {
				row[j] = v
			}
		}
		rows = append(rows, row)
	}
	return duel.New(labels, rows)
}

// BallotFile opens path and reads it with Ballot.
func BallotFile(path string, skip int) (*ballot.Ballot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ballot file: %w", err)
	}
	defer f.Close()
	return Ballot(f, skip)
}

// DuelFile opens path and reads it with Duel.
func DuelFile(path string) (*duel.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open duel file: %w", err)
	}
	defer f.Close()
	return Duel(f)
}

// record is one CSV row with the file line it started on. Comment and
// blank lines are skipped, so line is not the row index.
type record struct {
	line   int
	fields []string
}

func readAll(r io.Reader) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var records []record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)
		records = append(records, record{line: line, fields: fields})
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	return records, nil
}

// parseCell returns ok == false for an empty cell.
func parseCell(cell string) (int, bool, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(cell)
	if err != nil {
		return 0, false, fmt.Errorf("%q is not an integer: %w", cell, ErrMalformed)
	}
	return v, true, nil
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
