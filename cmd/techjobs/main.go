package main

import (
	"flag"
	"io"
	"os"
	"runtime"
	"techjobs/internal/techjobs"

	"github.com/sirupsen/logrus"
)

// Define command line arguments
var (
	configPath string

	debug     bool
	silent    bool
	dataPath  string
	tableDir  string
	tableName string
	mode      string
	column    string
	term      string

	stdout io.Writer = os.Stdout
)

// newFlagSet binds the command line arguments to a fresh set, so every
// parse starts from the defaults.
func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("techjobs", flag.ExitOnError)
	fs.StringVar(&configPath, "c", "", "Path to the configuration file")
	fs.BoolVar(&debug, "debug", false, "Enable debug mode")
	fs.BoolVar(&silent, "silent", false, "Enable silent mode")
	fs.StringVar(&dataPath, "f", "", "Job data CSV file")
	fs.StringVar(&tableDir, "d", "", "Directory of *.tbl.ini table definitions")
	fs.StringVar(&tableName, "t", "", "Table name in the -d directory")
	fs.StringVar(&mode, "m", "", "Run mode: list|values|column|search")
	fs.StringVar(&column, "k", "", "Column for values and column modes")
	fs.StringVar(&term, "s", "", "Search term")
	return fs
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 1024)
			n := runtime.Stack(buf, false)
			logrus.WithFields(logrus.Fields{
				"panic": r,
				"stack": string(buf[:n]),
			}).Error("A panic occurred")
		}
	}()

	newFlagSet().Parse(os.Args[1:])

	cfg, err := buildConfig()
	if err != nil {
		logrus.WithError(err).WithField("configPath", configPath).Fatal("Failed to load configuration")
	}
	techjobs.SetupLogging(cfg.LogLevel)

	if mode == "" {
		mode = techjobs.CModeList
	}

	if err := run(cfg); err != nil {
		logrus.WithError(err).Fatal("Application encountered an error")
	}
}

// buildConfig combines the flags with the config file. A value given on the
// command line wins over the file.
func buildConfig() (*techjobs.Config, error) {
	cfg := &techjobs.Config{
		DataPath:  dataPath,
		TableDir:  tableDir,
		TableName: tableName,
	}
	if debug {
		cfg.LogLevel = "debug"
	} else if silent {
		cfg.LogLevel = "error"
	}

	if configPath != "" {
		fileCfg, err := techjobs.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}
	cfg.SetDefaults()
	return cfg, nil
}

func run(cfg *techjobs.Config) error {
	q := techjobs.Query{
		Mode:   mode,
		Column: column,
		Term:   term,
	}
	return techjobs.Run(cfg, q, stdout)
}
