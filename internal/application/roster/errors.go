package roster

import "errors"

var (
	ErrExportWorkbook      = errors.New("failed to export workbook")
	ErrReadWorkbook        = errors.New("failed to read workbook")
	ErrApplyWorkbook       = errors.New("failed to apply workbook")
	ErrInvalidUpdatePolicy = errors.New("invalid update policy")
)
