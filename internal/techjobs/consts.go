package techjobs

const (
	CDefaultDataPath  = "resources/job_data.csv"
	CDefaultTableName = "jobs"
	CDefaultLogLevel  = "info"

	CModeList   = "list"
	CModeValues = "values"
	CModeColumn = "column"
	CModeSearch = "search"

	cRowSeparator = "*****"
	cNoResults    = "No Results"
)
