package export

import "errors"

var (
	ErrUnknownReportType = errors.New("unknown report type")
	ErrUnknownLanguage   = errors.New("unknown language")
)
