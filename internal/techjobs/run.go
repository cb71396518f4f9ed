package techjobs

import (
	"io"
	"techjobs/pkg/csvdb"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Query struct {
	Mode   string
	Column string
	Term   string
}

// OpenJobData returns the handle described by cfg: the named table of a
// *.tbl.ini directory when TableDir is set, otherwise the CSV at DataPath.
func OpenJobData(cfg *Config, w io.Writer) (*csvdb.JobData, error) {
	if cfg.TableDir != "" {
		db, err := csvdb.NewCsvDB(cfg.TableDir, csvdb.WithOutput(w))
		if err != nil {
			return nil, err
		}
		return db.GetTable(cfg.TableName)
	}
	return csvdb.NewJobData(cfg.DataPath, csvdb.WithOutput(w)), nil
}

func Run(cfg *Config, q Query, w io.Writer) error {
	jd, err := OpenJobData(cfg, w)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"path":   jd.Path(),
		"mode":   q.Mode,
		"column": q.Column,
	}).Debug("Running query")

	switch q.Mode {
	case CModeList:
		PrintJobs(w, jd.FindAll(), jd.Columns())
	case CModeValues:
		if q.Column == "" {
			return errors.New("-k: column is required in values mode")
		}
		values, err := jd.FindAllValues(q.Column)
		if err != nil {
			return err
		}
		PrintValues(w, q.Column, values)
	case CModeColumn:
		if q.Column == "" {
			return errors.New("-k: column is required in column mode")
		}
		rows, err := jd.FindByColumnAndValue(q.Column, q.Term)
		if err != nil {
			return err
		}
		PrintJobs(w, rows, jd.Columns())
	case CModeSearch:
		// a miss has already been reported by FindByValue
		if rows := jd.FindByValue(q.Term); len(rows) > 0 {
			PrintJobs(w, rows, jd.Columns())
		}
	default:
		return errors.Errorf("-m: mode must be one of %s|%s|%s|%s, got %q",
			CModeList, CModeValues, CModeColumn, CModeSearch, q.Mode)
	}
	return nil
}
