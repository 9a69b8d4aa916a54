package ports

import "github.com/Midhun-Kanadan/pdf-status/internal/core/domain"

// ReportRenderer renders a snapshot into a report fragment.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ReportRenderer interface {
	Render(snapshot domain.CorpusSnapshot) (string, error)
}
