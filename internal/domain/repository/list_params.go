package repository

// ListParams is the parameter bag every listing endpoint reduces to: an
// optional free-text search, an optional filter token, a sort key and a
// skip/limit window. Search wins over filter when both are present; an
// unrecognized filter token means "no filter".
type ListParams struct {
	Search string
	Filter string
	Sort   string // "" (insertion order desc), "likes" or "review"
	Limit  int64  // 0 = no limit
	Skip   int64
}
