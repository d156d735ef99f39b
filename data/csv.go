package data

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/Kirov7/RidDB/public"
	"github.com/pkg/errors"
)

var csvHeader = []string{"id", "first", "last"}

// ReadCSV parse rows of id,first,last. A leading header row is skipped.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records := make([]Record, 0)
	for first := true; ; first = false {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read csv")
		}
		line, _ := reader.FieldPos(0)
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) != len(csvHeader) {
			return nil, errors.Wrapf(public.ErrInvalidRecord, "line %d: want %d columns, got %d", line, len(csvHeader), len(row))
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			if first {
				// header
				continue
			}
			return nil, errors.Wrapf(public.ErrInvalidRecord, "line %d: id %q", line, row[0])
		}

		rec := Record{
			Id:    id,
			First: strings.TrimSpace(row[1]),
			Last:  strings.TrimSpace(row[2]),
		}
		if !rec.Valid() {
			return nil, errors.Wrapf(public.ErrInvalidRecord, "line %d: empty name", line)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteCSV write the records with a header row
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, rec := range records {
		row := []string{strconv.Itoa(rec.Id), rec.First, rec.Last}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "write record %d", rec.Id)
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flush csv")
}
