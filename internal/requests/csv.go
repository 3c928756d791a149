package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInvalidCSV = errors.New("invalid process file")

// LoadProcessesCSV reads rows of id,burst,arrival[,priority].
// Blank lines and lines starting with # are skipped.
func LoadProcessesCSV(r io.Reader) ([]Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidCSV, err)
	}

	processes := make([]Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: line %d: expected 3 or 4 columns, got %d", ErrInvalidCSV, i+1, len(row))
		}
		var p Process
		p.ID = strings.TrimSpace(row[0])
		if p.BurstTime, err = parseColumn(row[1], "burst", i); err != nil {
			return nil, err
		}
		if p.ArrivalTime, err = parseColumn(row[2], "arrival", i); err != nil {
			return nil, err
		}
		if len(row) == 4 {
			if p.Priority, err = parseColumn(row[3], "priority", i); err != nil {
				return nil, err
			}
		}
		processes = append(processes, p)
	}
	return processes, nil
}

func parseColumn(s, name string, line int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not an integer", ErrInvalidCSV, line+1, name, s)
	}
	return v, nil
}
