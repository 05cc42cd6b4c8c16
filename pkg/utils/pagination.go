package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PageWindow is a skip/limit window derived from client paging parameters.
// Limit 0 means "no limit".
type PageWindow struct {
	Limit int64
	Skip  int64
}

// AdminWindow reads the perpage/currentpage parameter pair used by the
// dashboard views. Non-numeric or missing values parse to 0, so a bad page
// number degrades to an unbounded window instead of failing the request.
func AdminWindow(c echo.Context) PageWindow {
	perpage := atoi(c.QueryParam("perpage"))
	currentpage := atoi(c.QueryParam("currentpage"))

	return PageWindow{
		Limit: int64(perpage),
		Skip:  int64(perpage * currentpage),
	}
}

// BrowseWindow reads the 1-based page parameter of the public browse view.
// The page size is fixed at 4 items; anything unparseable falls back to page 1.
func BrowseWindow(c echo.Context) PageWindow {
	const pageSize = 4

	page := atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	return PageWindow{
		Limit: pageSize,
		Skip:  int64((page - 1) * pageSize),
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
