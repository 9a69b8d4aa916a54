package ports

import "io"

// CitationParser counts the entries of a citation database.
//
//go:generate go run go.uber.org/mock/mockgen -source=citation_parser.go -destination=mocks/mock_citation_parser.go -package=mocks
type CitationParser interface {
	// CountEntries parses r and returns the number of top-level entries.
	CountEntries(r io.Reader) (int, error)
}
