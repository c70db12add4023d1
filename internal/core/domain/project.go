package domain

// CandidateGroup describes one logical sibling project that may consume the
// library. Aliases are tried in order; the first alias whose directory holds a
// manifest declaring the library wins, so a single logical project is never
// reported twice.
type CandidateGroup struct {
	Label   string
	Aliases []string
}

// CandidateProject is a discovered consumer of the library. Identity is the
// root path. Instances are immutable once produced by discovery.
type CandidateProject struct {
	// RootPath is the absolute path to the project directory.
	RootPath string

	// Label is the human-readable name of the candidate group that matched.
	Label string

	// MatchedName is the alias that matched on disk.
	MatchedName string
}
