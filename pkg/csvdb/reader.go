package csvdb

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type Reader struct {
	fr       *os.File
	zr       *gzip.Reader
	reader   *csv.Reader
	filename string
	mode     string
}

func newReader(filename string) (*Reader, error) {
	c := new(Reader)
	c.filename = filename
	if err := c.open(); err != nil {
		c.close()
		return nil, err
	}
	return c, nil
}

func (c *Reader) open() error {
	ext := filepath.Ext(c.filename)
	var zr *gzip.Reader
	var r *csv.Reader
	mode := ""

	fr, err := os.Open(c.filename)
	if err != nil {
		return errors.WithStack(err)
	}
	c.fr = fr

	if ext == ".gz" || ext == ".gzip" {
		zr, err = gzip.NewReader(fr)
		if err != nil {
			return errors.WithStack(err)
		}
		r = csv.NewReader(zr)
		mode = cRModeGZip
	} else {
		r = csv.NewReader(fr)
		mode = cRModePlain
	}
	// every record must have as many fields as the header
	r.FieldsPerRecord = 0

	c.zr = zr
	c.reader = r
	c.mode = mode
	return nil
}

// readAll parses the header and every following record in one pass.
func (c *Reader) readAll() ([]string, [][]string, error) {
	header, err := c.reader.Read()
	if err == io.EOF {
		return nil, nil, errors.Errorf("%s: no header line", c.filename)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s: read header", c.filename)
	}
	header[0] = strings.TrimPrefix(header[0], cUTF8BOM)
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		if seen[col] {
			return nil, nil, errors.Errorf("%s: duplicate column %q in header", c.filename, col)
		}
		seen[col] = true
	}

	records := make([][]string, 0)
	for {
		values, err := c.reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s: read record", c.filename)
		}
		records = append(records, values)
	}
	return header, records, nil
}

func (c *Reader) close() {
	if c.zr != nil {
		c.zr.Close()
		c.zr = nil
	}
	if c.fr != nil {
		c.fr.Close()
		c.fr = nil
	}
}
