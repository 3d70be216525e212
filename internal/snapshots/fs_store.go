package snapshots

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/preston-bernstein/semifinal-compare/internal/domain/squad"
)

const utf8BOM = "\ufeff"

// Store defines how squad snapshots are loaded.
type Store interface {
	Load(path string) (squad.Snapshot, error)
}

// FSStore loads squad snapshots from CSV files on disk.
type FSStore struct{}

// NewFSStore constructs an FS-backed snapshot store.
func NewFSStore() *FSStore {
	return &FSStore{}
}

// Load reads a squad CSV. The header row names the columns; every column in
// squad.RequiredColumns must be present. Goal and assist cells are kept raw
// and only converted when totals are summed.
func (s *FSStore) Load(path string) (squad.Snapshot, error) {
	if path == "" {
		return squad.Snapshot{}, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return squad.Snapshot{}, err
	}
	defer f.Close()

	return decode(path, f)
}

func decode(path string, r io.Reader) (squad.Snapshot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return squad.Snapshot{}, fmt.Errorf("%s: %w", path, ErrNoHeader)
	}
	if err != nil {
		return squad.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	index := make(map[string]int, len(header))
	for i, col := range header {
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}
	for _, col := range squad.RequiredColumns {
		if _, ok := index[col]; !ok {
			return squad.Snapshot{}, &squad.MissingColumnError{Column: col, Path: path}
		}
	}

	snap := squad.Snapshot{Columns: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return squad.Snapshot{}, fmt.Errorf("%s: %w", path, err)
		}
		line, _ := reader.FieldPos(0)
		if len(record) > len(header) {
			return squad.Snapshot{}, fmt.Errorf("%s:%d: expected %d fields, saw %d", path, line, len(header), len(record))
		}
		row := rowReader{path: path, line: line, index: index, record: record}
		player := squad.Player{
			Name:           row.text(squad.ColumnName),
			Position:       row.text(squad.ColumnPosition),
			FitnessPercent: row.number(squad.ColumnFitnessPercent),
			Attack:         row.number(squad.ColumnAttack),
			Defense:        row.number(squad.ColumnDefense),
			Consistency:    row.number(squad.ColumnConsistency),
			GoalsLast5Y:    row.text(squad.ColumnGoals),
			AssistsLast5Y:  row.text(squad.ColumnAssists),
		}
		if row.err != nil {
			return squad.Snapshot{}, row.err
		}
		snap.Players = append(snap.Players, player)
	}
	return snap, nil
}

// rowReader converts cells of one record, keeping the first failure.
type rowReader struct {
	path   string
	line   int
	index  map[string]int
	record []string
	err    error
}

func (r *rowReader) cell(col string) (string, bool) {
	i, ok := r.index[col]
	if !ok || i >= len(r.record) {
		return "", false
	}
	return r.record[i], true
}

// text returns the cell as written; names are join keys and stay untrimmed.
func (r *rowReader) text(col string) string {
	v, _ := r.cell(col)
	return v
}

func (r *rowReader) number(col string) float64 {
	v, _ := r.cell(col)
	v = strings.TrimSpace(v)
	if v == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(col, v, err)
		return math.NaN()
	}
	return f
}

func (r *rowReader) fail(col, value string, err error) {
	if r.err == nil {
		r.err = &ParseError{Path: r.path, Line: r.line, Column: col, Value: value, Err: err}
	}
}
