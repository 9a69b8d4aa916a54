// Package config provides the configuration loader for pdf-status.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Midhun-Kanadan/pdf-status/internal/core/domain"
	"github.com/Midhun-Kanadan/pdf-status/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configured paths.
const (
	EnvCorpusRoot   = "PDFSTATUS_CORPUS_ROOT"
	EnvSnapshotPath = "PDFSTATUS_SNAPSHOT_PATH"
	EnvReportPath   = "PDFSTATUS_REPORT_PATH"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at configPath. A missing file yields the
// defaults. Relative paths in the file are resolved against its directory;
// environment overrides are used as given.
func (l *Loader) Load(configPath string) (domain.Config, error) {
	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	configDir := filepath.Dir(configPath)
	defaults := domain.DefaultConfig()

	cfg := domain.Config{
		CorpusRoot:   resolvePath(configDir, orDefault(file.CorpusRoot, defaults.CorpusRoot)),
		SnapshotPath: resolvePath(configDir, orDefault(file.SnapshotPath, defaults.SnapshotPath)),
		ReportPath:   resolvePath(configDir, orDefault(file.ReportPath, defaults.ReportPath)),
		Extensions: domain.Extensions{
			Document: orDefault(file.Extensions.Document, defaults.Extensions.Document),
			Artifact: orDefault(file.Extensions.Artifact, defaults.Extensions.Artifact),
			Citation: orDefault(file.Extensions.Citation, defaults.Extensions.Citation),
		},
		Markers: domain.Markers{
			Start: strings.TrimSpace(orDefault(file.Markers.Start, defaults.Markers.Start)),
			End:   strings.TrimSpace(orDefault(file.Markers.End, defaults.Markers.End)),
		},
		Ignore: l.validPatterns(file.Ignore),
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

// validPatterns drops malformed glob patterns with a warning.
func (l *Loader) validPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if _, err := path.Match(p, ""); err != nil {
			l.Logger.Warn(fmt.Sprintf("ignoring malformed ignore pattern %q", p))
			continue
		}
		out = append(out, p)
	}
	return out
}

func applyEnv(cfg *domain.Config) {
	for env, target := range map[string]*string{
		EnvCorpusRoot:   &cfg.CorpusRoot,
		EnvSnapshotPath: &cfg.SnapshotPath,
		EnvReportPath:   &cfg.ReportPath,
	} {
		if v, ok := os.LookupEnv(env); ok && strings.TrimSpace(v) != "" {
			*target = filepath.Clean(v)
		}
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func resolvePath(configDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(configDir, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
// A missing or empty file leaves target untouched. Unknown keys are rejected.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
