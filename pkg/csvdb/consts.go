package csvdb

const (
	cRModePlain  = "plain"
	cRModeGZip   = "gzip"
	cTblIniExt   = "tbl.ini"
	cIniSection  = "conf"
	cUTF8BOM     = "\ufeff"
	cLoadFailMsg = "Failed to load job data"
	cNoMatchMsg  = "Sorry, we could not find a job with the search term %s"

	cErrPathNotExists = "path not exists"
)
