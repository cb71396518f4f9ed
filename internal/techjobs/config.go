package techjobs

import (
	"os"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

/*
*
---
dataPath: resources/job_data.csv
tableDir:
tableName: jobs
logLevel: info
*
*/
type Config struct {
	DataPath  string `yaml:"dataPath"`
	TableDir  string `yaml:"tableDir"`
	TableName string `yaml:"tableName"`
	LogLevel  string `yaml:"logLevel"`
}

var envPlaceholderRe = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// replaceEnvVars substitutes {{ VAR }} with the value of $VAR.
func replaceEnvVars(content string) string {
	return envPlaceholderRe.ReplaceAllStringFunc(content, func(placeholder string) string {
		varName := envPlaceholderRe.FindStringSubmatch(placeholder)[1]
		return os.Getenv(varName)
	})
}

func LoadConfig(path string) (*Config, error) {
	logrus.WithField("path", path).Info("Loading configuration")

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c := new(Config)
	if err := yaml.Unmarshal([]byte(replaceEnvVars(string(yamlFile))), c); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return c, nil
}

// Merge fills the fields of c that are empty with those of other. DataPath
// and TableDir name the data source together: when c already has either one,
// neither is taken from other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if c.DataPath == "" && c.TableDir == "" {
		c.DataPath = other.DataPath
		c.TableDir = other.TableDir
	}
	if c.TableName == "" {
		c.TableName = other.TableName
	}
	if c.LogLevel == "" {
		c.LogLevel = other.LogLevel
	}
}

func (c *Config) SetDefaults() {
	if c.DataPath == "" {
		c.DataPath = CDefaultDataPath
	}
	if c.TableName == "" {
		c.TableName = CDefaultTableName
	}
	if c.LogLevel == "" {
		c.LogLevel = CDefaultLogLevel
	}
}
