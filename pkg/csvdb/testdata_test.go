package csvdb

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"techjobs/pkg/utils"
	"testing"
)

const testJobsCsv = `name,employer,location,position type,core competency
Junior Data Analyst,Lockerdome,Saint Louis,Data Scientist / Business Intelligence,Statistical Analysis
Junior Web Developer,Cozy,Portland,Web - Back End,Ruby
Mid-Level Back End Developer,"Enterprise Holdings, Inc",Saint Louis,Web - Back End,Java
Front End Developer,Acme Inc,Kansas City,Web - Front End,JavaScript
Python Developer,Other Co,Portland,Web - Back End,Python
"Dev, ""Senior""",Cozy,Saint Louis,Web - Full Stack,Python
`

var testJobsColumns = []string{"name", "employer", "location", "position type", "core competency"}

func writeTestCsv(t *testing.T, name, content string) string {
	t.Helper()
	rootDir, err := utils.InitTestDir(t.Name())
	if err != nil {
		t.Fatalf("%v", err)
	}
	path, err := utils.WriteTestFile(rootDir, name, content)
	if err != nil {
		t.Fatalf("%v", err)
	}
	return path
}

func writeTestGzip(t *testing.T, name, content string) string {
	t.Helper()
	rootDir, err := utils.InitTestDir(t.Name())
	if err != nil {
		t.Fatalf("%v", err)
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatalf("%v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("%v", err)
	}
	path := filepath.Join(rootDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("%v", err)
	}
	return path
}

func newTestJobData(t *testing.T) (*JobData, *bytes.Buffer) {
	t.Helper()
	path := writeTestCsv(t, "job_data.csv", testJobsCsv)
	out := new(bytes.Buffer)
	return NewJobData(path, WithOutput(out)), out
}
