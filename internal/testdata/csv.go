// Package testdata reads bulk test data files for data-driven suites.
package testdata

import (
	"encoding/csv"
	"fmt"
	"os"
)

// RegistrationData is one row of the registration bulk-data file. Columns
// are positional: first name, last name, phone, password, subscribe flag.
type RegistrationData struct {
	FirstName string
	LastName  string
	Telephone string
	Password  string
	Subscribe string
}

// ReadRegistrationCSV loads the registration rows. The header row is
// skipped; each following row must have at least five columns.
func ReadRegistrationCSV(path string) ([]RegistrationData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registration data: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read registration data %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]RegistrationData, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 5 {
			return nil, fmt.Errorf("registration data %s: row %d has %d columns, want 5", path, i+2, len(row))
		}
		records = append(records, RegistrationData{
			FirstName: row[0],
			LastName:  row[1],
			Telephone: row[2],
			Password:  row[3],
			Subscribe: row[4],
		})
	}
	return records, nil
}
