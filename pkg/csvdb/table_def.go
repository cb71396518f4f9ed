package csvdb

import (
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

// TableDef is one <name>.tbl.ini file:
//
//	[conf]
//	path = job_data.csv
//	description = LaunchCode job listings
type TableDef struct {
	tableName   string
	path        string
	description string
}

func newTableDef(tableName, path, description string) *TableDef {
	td := new(TableDef)
	td.tableName = tableName
	td.path = path
	td.description = description
	return td
}

func (td *TableDef) Name() string {
	return td.tableName
}

func (td *TableDef) Path() string {
	return td.path
}

func (td *TableDef) Description() string {
	return td.description
}

func loadTableDef(iniFile string) (*TableDef, error) {
	fileName := filepath.Base(iniFile)
	if !strings.HasSuffix(fileName, "."+cTblIniExt) {
		return nil, errors.New("Not a proper extension : " + iniFile)
	}
	tableName := strings.TrimSuffix(fileName, "."+cTblIniExt)
	if tableName == "" || strings.Contains(tableName, ".") {
		return nil, errors.New("Not a proper filename format : " + iniFile)
	}

	cfg, err := ini.Load(iniFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	path := ""
	description := ""
	for _, k := range cfg.Section(cIniSection).Keys() {
		switch k.Name() {
		case "path":
			path = k.MustString("")
		case "description":
			description = k.MustString("")
		}
	}
	if path == "" {
		return nil, errors.New("path is not set in " + iniFile)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(iniFile), path)
	}
	return newTableDef(tableName, path, description), nil
}
