package writer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/creachadair/atomicfile"
	"github.com/google/uuid"

	"github.com/rickgao/temarket-data/internal/model"
)

// Columns is the CSV header row.
var Columns = []string{"Hour", "Participant", "Type", "Price (cents/KWh)", "Quantity (KW)"}

// WriteCSV writes the header and one row per record. Absent participant ids
// are written as empty fields.
func WriteCSV(w io.Writer, table model.OrderTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(Columns))
	for _, r := range table {
		row[0] = strconv.Itoa(r.Hour)
		row[1] = r.Participant.String()
		row[2] = r.Side.String()
		row[3] = formatFloat(r.Price)
		row[4] = formatFloat(r.Quantity)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile replaces path with the CSV rendering of table. The file is
// either fully written or left untouched.
func WriteCSVFile(path string, table model.OrderTable) (int64, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}
	n, err := atomicfile.WriteAll(path, &buf, 0o644)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}

// ReadCSV parses a table written by WriteCSV.
func ReadCSV(r io.Reader) (model.OrderTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Columns)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("read csv: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if !slices.Equal(header, Columns) {
		return nil, fmt.Errorf("read csv: unexpected header %q", header)
	}

	var table model.OrderTable
	for line := 2; ; line++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rec, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		table = append(table, rec)
	}
}

// ReadCSVFile opens path and parses it with ReadCSV.
func ReadCSVFile(path string) (model.OrderTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

func parseRecord(fields []string) (model.OrderRecord, error) {
	var rec model.OrderRecord

	hour, err := strconv.Atoi(fields[0])
	if err != nil || hour < 0 {
		return rec, fmt.Errorf("invalid hour %q", fields[0])
	}
	rec.Hour = hour

	if fields[1] != "" {
		id, err := strconv.Atoi(fields[1])
		if err != nil || id < 0 {
			return rec, fmt.Errorf("invalid participant %q", fields[1])
		}
		rec.Participant = model.Participant(id)
	}

	if rec.Side, err = model.ParseSide(fields[2]); err != nil {
		return rec, err
	}
	if rec.Price, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return rec, fmt.Errorf("invalid price %q", fields[3])
	}
	if rec.Quantity, err = strconv.ParseFloat(fields[4], 64); err != nil {
		return rec, fmt.Errorf("invalid quantity %q", fields[4])
	}
	return rec, nil
}

// CSVSink writes tables to a file, or to Stdout when Path is "-".
type CSVSink struct {
	Path   string
	Stdout io.Writer
}

// Write implements Sink. The run id is not part of the CSV format.
func (s CSVSink) Write(_ context.Context, _ uuid.UUID, table model.OrderTable) error {
	if s.Path == "-" {
		out := s.Stdout
		if out == nil {
			out = os.Stdout
		}
		return WriteCSV(out, table)
	}
	_, err := WriteCSVFile(s.Path, table)
	return err
}

// Name implements Sink.
func (s CSVSink) Name() string { return "csv:" + s.Path }
