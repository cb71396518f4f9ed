package csvdb

import (
	"os"
	"path/filepath"
	"strings"
	"techjobs/pkg/utils"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestReaderReadAll(t *testing.T) {
	path := writeTestCsv(t, "job_data.csv", testJobsCsv)
	r, err := newReader(path)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	defer r.close()
	if err := utils.GetGotExpErr("mode", r.mode, cRModePlain); err != nil {
		t.Errorf("%v", err)
	}

	header, records, err := r.readAll()
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if diff := cmp.Diff(testJobsColumns, header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if err := utils.GetGotExpErr("records", len(records), 6); err != nil {
		t.Errorf("%v", err)
	}
	if err := utils.GetGotExpErr("quoted comma", records[2][1], "Enterprise Holdings, Inc"); err != nil {
		t.Errorf("%v", err)
	}
	if err := utils.GetGotExpErr("escaped quote", records[5][0], `Dev, "Senior"`); err != nil {
		t.Errorf("%v", err)
	}
}

func TestReaderGzip(t *testing.T) {
	path := writeTestGzip(t, "job_data.csv.gz", testJobsCsv)
	r, err := newReader(path)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	defer r.close()
	if err := utils.GetGotExpErr("mode", r.mode, cRModeGZip); err != nil {
		t.Errorf("%v", err)
	}
	_, records, err := r.readAll()
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("records", len(records), 6); err != nil {
		t.Errorf("%v", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	rootDir, err := utils.InitTestDir(t.Name())
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	_, err = newReader(filepath.Join(rootDir, "nothing.csv"))
	if err == nil {
		t.Errorf("expected an error for a missing file")
		return
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestReaderStripsBOM(t *testing.T) {
	path := writeTestCsv(t, "bom.csv", "\ufeffname,employer\nDev,Cozy\n")
	r, err := newReader(path)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	defer r.close()
	header, _, err := r.readAll()
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if diff := cmp.Diff([]string{"name", "employer"}, header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestReaderRejectsBadInput(t *testing.T) {
	cases := []struct {
		title   string
		content string
		errPart string
	}{
		{"empty file", "", "no header"},
		{"ragged record", "name,employer\nDev,Cozy,extra\n", "read record"},
		{"short record", "name,employer\nDev\n", "read record"},
		{"bare quote", "name,employer\n\"Dev,Cozy\n", "read record"},
		{"duplicate column", "name,name\na,b\n", "duplicate column"},
	}
	for _, c := range cases {
		path := writeTestCsv(t, "bad.csv", c.content)
		r, err := newReader(path)
		if err != nil {
			t.Errorf("%s: %v", c.title, err)
			continue
		}
		_, _, err = r.readAll()
		r.close()
		if err == nil {
			t.Errorf("%s: expected an error", c.title)
			continue
		}
		if !strings.Contains(err.Error(), c.errPart) {
			t.Errorf("%s: error %q does not mention %q", c.title, err.Error(), c.errPart)
		}
	}
}
