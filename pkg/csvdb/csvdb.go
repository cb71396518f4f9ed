package csvdb

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"techjobs/pkg/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CsvDB is the set of tables declared by the *.tbl.ini files of a directory.
type CsvDB struct {
	baseDir   string
	tableDefs map[string]*TableDef
	tables    map[string]*JobData
	opts      []Option
	mu        sync.Mutex
}

// NewCsvDB(baseDir) reads every table definition in baseDir. Options are
// passed on to the JobData handles it creates.
func NewCsvDB(baseDir string, opts ...Option) (*CsvDB, error) {
	if !utils.PathExist(baseDir) {
		return nil, errors.Errorf("%s: %s", cErrPathNotExists, baseDir)
	}
	db := new(CsvDB)
	db.baseDir = baseDir
	db.tableDefs = make(map[string]*TableDef)
	db.tables = make(map[string]*JobData)
	db.opts = opts

	iniFiles, err := filepath.Glob(fmt.Sprintf("%s/*.%s", baseDir, cTblIniExt))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for _, iniFile := range iniFiles {
		td, err := loadTableDef(iniFile)
		if err != nil {
			return nil, err
		}
		db.tableDefs[td.tableName] = td
		logrus.WithFields(logrus.Fields{
			"table": td.tableName,
			"path":  td.path,
		}).Debug("Registered table")
	}
	return db, nil
}

func (db *CsvDB) TableExists(tableName string) bool {
	_, ok := db.tableDefs[tableName]
	return ok
}

func (db *CsvDB) TableNames() []string {
	names := make([]string, 0, len(db.tableDefs))
	for name := range db.tableDefs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (db *CsvDB) GetTableDef(tableName string) (*TableDef, error) {
	td, ok := db.tableDefs[tableName]
	if !ok {
		return nil, errors.Wrapf(ErrTableNotFound, "%s in %s", tableName, db.baseDir)
	}
	return td, nil
}

// GetTable returns the handle for tableName. Repeated calls return the same
// handle, so the file behind it is read at most once.
func (db *CsvDB) GetTable(tableName string) (*JobData, error) {
	td, err := db.GetTableDef(tableName)
	if err != nil {
		return nil, err
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	j, ok := db.tables[tableName]
	if !ok {
		j = NewJobData(td.path, db.opts...)
		db.tables[tableName] = j
	}
	return j, nil
}
