package domain

// StatementSource defines the interface for locating and loading raw statement files
type StatementSource interface {
	// Files returns the paths of all statement files, in a stable order
	Files() ([]string, error)

	// ReadLines returns the raw (not yet transcoded) lines of a statement file
	ReadLines(path string) ([]string, error)
}

// StatementParser defines the interface for turning the raw lines of one file into statements
type StatementParser interface {
	Parse(lines []string) ([]*Statement, error)
}
