package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidExtension is returned when a configured file extension does not start with a dot.
	ErrInvalidExtension = zerr.New("invalid extension, expected a leading '.'")

	// ErrDuplicateExtension is returned when two configured extensions are identical.
	ErrDuplicateExtension = zerr.New("document, artifact and citation extensions must differ")

	// ErrInvalidMarkers is returned when the report markers are empty, identical or span several lines.
	ErrInvalidMarkers = zerr.New("report markers must be two distinct, non-empty single lines")

	// ErrEmptyPath is returned when a required path option is empty.
	ErrEmptyPath = zerr.New("path option must not be empty")

	// ErrCorpusScanFailed is returned when walking a corpus partition fails.
	ErrCorpusScanFailed = zerr.New("failed to scan corpus partition")

	// ErrCitationOpenFailed is returned when a citation file cannot be opened.
	ErrCitationOpenFailed = zerr.New("failed to open citation file")

	// ErrCitationParseFailed is returned when a citation file cannot be parsed.
	ErrCitationParseFailed = zerr.New("failed to parse citation file")

	// ErrInvalidModTime is returned when a persisted modification time is not a number.
	ErrInvalidModTime = zerr.New("invalid modification time")

	// ErrSnapshotReadFailed is returned when the snapshot file cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read snapshot")

	// ErrSnapshotDecodeFailed is returned when the snapshot file is not a valid snapshot.
	ErrSnapshotDecodeFailed = zerr.New("failed to decode snapshot")

	// ErrSnapshotEncodeFailed is returned when the snapshot cannot be encoded.
	ErrSnapshotEncodeFailed = zerr.New("failed to encode snapshot")

	// ErrSnapshotSaveFailed is returned when the snapshot cannot be written durably.
	ErrSnapshotSaveFailed = zerr.New("failed to save snapshot")

	// ErrSnapshotInconsistent is returned when partition counts do not sum to their totals.
	ErrSnapshotInconsistent = zerr.New("snapshot partition counts do not sum to totals")

	// ErrNegativeCount is returned when a snapshot carries a negative count.
	ErrNegativeCount = zerr.New("snapshot count must not be negative")

	// ErrReportRenderFailed is returned when the report fragment cannot be rendered.
	ErrReportRenderFailed = zerr.New("failed to render report")

	// ErrDocumentReadFailed is returned when the report document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read report document")

	// ErrDocumentWriteFailed is returned when the report document cannot be written.
	ErrDocumentWriteFailed = zerr.New("failed to write report document")
)
