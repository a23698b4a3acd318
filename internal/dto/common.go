package dto

import "time"

// ListParams defines offset based query parameters for reference data listings.
type ListParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// CursorParams defines cursor based query parameters for ledger listings.
type CursorParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// dateLayout is used for date-only query parameters and report headers.
const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
