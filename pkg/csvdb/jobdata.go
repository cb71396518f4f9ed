package csvdb

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"techjobs/pkg/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// JobData is a lazily loaded handle on one CSV file. The file is read on the
// first query and the result, including a failed load, is kept for the life
// of the handle.
type JobData struct {
	path      string
	out       io.Writer
	once      sync.Once
	table     *Table
	loadErr   error
	loadCount int
}

type Option func(*JobData)

// WithOutput sets where user facing diagnostics are written. Defaults to
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(j *JobData) {
		j.out = w
	}
}

func NewJobData(path string, opts ...Option) *JobData {
	j := new(JobData)
	j.path = path
	j.out = os.Stdout
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *JobData) Path() string {
	return j.path
}

func (j *JobData) ensureLoaded() {
	j.once.Do(j.load)
}

func (j *JobData) load() {
	j.loadCount++
	t, err := loadTable(j.path)
	if err != nil {
		j.loadErr = err
		j.table = newEmptyTable()
		logrus.WithError(err).WithField("path", j.path).Error("Failed to load job data")
		fmt.Fprintln(j.out, cLoadFailMsg)
		return
	}
	j.table = t
	logrus.WithFields(logrus.Fields{
		"path":    j.path,
		"rows":    t.Len(),
		"columns": len(t.columns),
	}).Debug("Loaded job data")
}

// LoadErr returns the error of the one load attempt, or nil if it succeeded.
func (j *JobData) LoadErr() error {
	j.ensureLoaded()
	return j.loadErr
}

// Columns returns the header in file order. Empty when the load failed.
func (j *JobData) Columns() []string {
	j.ensureLoaded()
	return j.table.Columns()
}

func (j *JobData) Count(conditionCheckFunc func(Row) bool) int {
	j.ensureLoaded()
	return j.table.Count(conditionCheckFunc)
}

func (j *JobData) SelectRows(conditionCheckFunc func(Row) bool) []Row {
	j.ensureLoaded()
	return j.table.SelectRows(conditionCheckFunc)
}

// checkColumn fails for names missing from a loaded header. A table whose load
// failed has no header to check against, so every name is accepted and the
// query simply finds nothing.
func (j *JobData) checkColumn(column string) error {
	if j.loadErr != nil {
		return nil
	}
	if j.table.GetColIdx(column) < 0 {
		return errors.Wrapf(ErrColumnNotFound, "%q in %s", column, j.path)
	}
	return nil
}

// FindAllValues returns the distinct values of column in the order they first
// appear.
func (j *JobData) FindAllValues(column string) ([]string, error) {
	j.ensureLoaded()
	if err := j.checkColumn(column); err != nil {
		return nil, err
	}
	values := make([]string, len(j.table.rows))
	for i, row := range j.table.rows {
		values[i] = row[column]
	}
	return utils.UniqueStrings(values), nil
}

// FindAll returns every row in load order. The slice belongs to the table and
// must not be modified.
func (j *JobData) FindAll() []Row {
	j.ensureLoaded()
	return j.table.rows
}

// FindByColumnAndValue returns the rows whose column contains value. The match
// is case sensitive, so "Enterprise" finds "Enterprise Holdings, Inc".
func (j *JobData) FindByColumnAndValue(column, value string) ([]Row, error) {
	j.ensureLoaded()
	if err := j.checkColumn(column); err != nil {
		return nil, err
	}
	return j.table.SelectRows(func(row Row) bool {
		return strings.Contains(row[column], value)
	}), nil
}

// FindByValue returns the rows where any cell contains searchTerm, ignoring
// case. Each row appears at most once. When nothing matches a notice is
// written to the output.
func (j *JobData) FindByValue(searchTerm string) []Row {
	j.ensureLoaded()
	term := strings.ToLower(searchTerm)
	columns := j.table.columns
	jobs := j.table.SelectRows(func(row Row) bool {
		for _, col := range columns {
			if strings.Contains(strings.ToLower(row[col]), term) {
				return true
			}
		}
		return false
	})
	// the load failure was already reported
	if len(jobs) == 0 && j.loadErr == nil {
		fmt.Fprintf(j.out, cNoMatchMsg+"\n", searchTerm)
	}
	return jobs
}
