package roster

import "time"

// Workbook is the in-memory export model handed to the spreadsheet
// codec. It never outlives a single request.
type Workbook struct {
	Sheets []Sheet
}

// Sheet holds one group's roster. Name doubles as the sheet name,
// Date is the export timestamp written into the metadata header.
type Sheet struct {
	Name       string
	GroupOwner string
	Date       time.Time
	Users      []User
}
