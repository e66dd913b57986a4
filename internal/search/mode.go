package search

// Mode selects how a line is compared against the query.
type Mode int

const (
	// CaseSensitive is the default: exact substring containment.
	CaseSensitive Mode = iota
	// CaseInsensitive lowercases query and line before comparing.
	CaseInsensitive
)

func (m Mode) String() string {
	switch m {
	case CaseInsensitive:
		return "case-insensitive"
	default:
		return "case-sensitive"
	}
}
