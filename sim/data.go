package sim

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Data holds the observed daily series the simulation tests against and is
// scored against: the number of diagnostic tests run each day and the
// number of new positive diagnoses. Entries are NaN for days with no
// observation; the engine skips those days rather than treating them as
// zero. Data is read-only once loaded and may be shared across replicas.
type Data struct {
	NewTests     []float64
	NewPositives []float64
}

// Len returns the number of observed days.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.NewTests)
}

// TestsOn returns the test capacity for the given day. ok is false when the
// day is out of range, unobserved, or has no tests scheduled.
func (d *Data) TestsOn(day int) (float64, bool) {
	if d == nil || day < 0 || day >= len(d.NewTests) {
		return 0, false
	}
	v := d.NewTests[day]
	if math.IsNaN(v) || v <= 0 {
		return 0, false
	}
	return v, true
}

// PositivesOn returns the observed new-diagnosis count for the given day.
// ok is false when the day is out of range or unobserved. A recorded zero
// is a real observation and is returned with ok true.
func (d *Data) PositivesOn(day int) (float64, bool) {
	if d == nil || day < 0 || day >= len(d.NewPositives) {
		return 0, false
	}
	v := d.NewPositives[day]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// LoadData reads an observed series CSV with a day,new_tests,new_positives
// header. Blank cells become NaN (no observation for that day). Rows must
// be in day order starting at day 0.
func LoadData(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data: parse %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("data: %s has no observation rows", path)
	}
	header := rows[0]
	if len(header) != 3 || header[0] != "day" || header[1] != "new_tests" || header[2] != "new_positives" {
		return nil, fmt.Errorf("data: %s: expected header day,new_tests,new_positives, got %v", path, header)
	}

	d := &Data{}
	for i, row := range rows[1:] {
		day, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil || day != i {
			return nil, fmt.Errorf("data: %s row %d: days must be consecutive from 0", path, i+1)
		}
		tests, err := parseCell(row[1])
		if err != nil {
			return nil, fmt.Errorf("data: %s row %d: %w", path, i+1, err)
		}
		positives, err := parseCell(row[2])
		if err != nil {
			return nil, fmt.Errorf("data: %s row %d: %w", path, i+1, err)
		}
		d.NewTests = append(d.NewTests, tests)
		d.NewPositives = append(d.NewPositives, positives)
	}
	return d, nil
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
