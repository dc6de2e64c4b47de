package dataset

import (
	"bufio"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names referenced by the dashboard.
const (
	ColAge       = "age"
	ColJob       = "job"
	ColMarital   = "marital"
	ColEducation = "education"
	ColHousing   = "housing"
	ColLoan      = "loan"
	ColContact   = "contact"
	ColPoutcome  = "poutcome"
	ColMonth     = "month"
	ColDuration  = "duration"
	ColOutcome   = "y"
)

// DefaultDelimiter is the field separator of the bank-marketing export.
const DefaultDelimiter = ';'

// numericColumns are parsed as floats. Type detection is off, so every other
// column stays a string.
var numericColumns = []string{ColAge, ColDuration}

// Dataset is the in-memory table loaded at startup. It is never mutated
// after construction, so concurrent readers need no locking.
type Dataset struct {
	df dataframe.DataFrame
}

// LoadError reports a dataset that could not be read. It is fatal at startup.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads a delimited file with a header row.
func Load(path string, delimiter rune) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	df := dataframe.ReadCSV(bufio.NewReader(f),
		dataframe.WithDelimiter(delimiter),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.WithTypes(columnTypes()),
	)
	if df.Err != nil {
		return nil, &LoadError{Path: path, Err: df.Err}
	}
	return &Dataset{df: df}, nil
}

// FromRecords builds a Dataset from rows, header first.
func FromRecords(records [][]string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, &LoadError{Path: "<records>", Err: fmt.Errorf("no header row")}
	}
	for i, row := range records[1:] {
		if len(row) != len(records[0]) {
			return nil, &LoadError{
				Path: "<records>",
				Err:  fmt.Errorf("record %d: got %d fields, want %d", i+1, len(row), len(records[0])),
			}
		}
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.WithTypes(columnTypes()),
	)
	if df.Err != nil {
		return nil, &LoadError{Path: "<records>", Err: df.Err}
	}
	return &Dataset{df: df}, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int { return d.df.Nrow() }

// Columns returns the header names in file order.
func (d *Dataset) Columns() []string { return d.df.Names() }

// Floats returns a numeric column. Values that failed to parse are NaN.
func (d *Dataset) Floats(col string) ([]float64, error) {
	s := d.df.Col(col)
	if s.Err != nil {
		return nil, fmt.Errorf("column %q: %w", col, s.Err)
	}
	return s.Float(), nil
}

// Strings returns a column as its raw string values.
func (d *Dataset) Strings(col string) ([]string, error) {
	s := d.df.Col(col)
	if s.Err != nil {
		return nil, fmt.Errorf("column %q: %w", col, s.Err)
	}
	return s.Records(), nil
}

func columnTypes() map[string]series.Type {
	types := make(map[string]series.Type, len(numericColumns))
	for _, name := range numericColumns {
		types[name] = series.Float
	}
	return types
}
