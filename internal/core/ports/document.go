package ports

// DocumentStore reads and writes the report document.
//
//go:generate go run go.uber.org/mock/mockgen -source=document.go -destination=mocks/mock_document.go -package=mocks
type DocumentStore interface {
	// Read returns the document content and whether the document exists.
	Read(path string) (content string, exists bool, err error)

	// Write replaces the document content.
	// Returns false without touching the file when the content is unchanged.
	Write(path, content string) (changed bool, err error)
}
