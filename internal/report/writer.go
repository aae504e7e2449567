package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Writer saves rendered report cards under <dir>/html, one file per
// student. Each batch run carries a run ID for log correlation.
type Writer struct {
	dir      string
	renderer *Renderer
	runID    string
	log      *slog.Logger
	taken    map[string]bool
}

// NewWriter creates the output directory tree and a writer for it.
func NewWriter(dir string, log *slog.Logger) (*Writer, error) {
	if err := os.MkdirAll(filepath.Join(dir, "html"), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Writer{
		dir:      dir,
		renderer: renderer,
		runID:    uuid.New().String(),
		log:      log,
		taken:    make(map[string]bool),
	}, nil
}

// RunID returns the batch run identifier.
func (w *Writer) RunID() string { return w.runID }

// WriteCard renders and saves one student's report card, returning the
// written path.
func (w *Writer) WriteCard(card Card, period string, now time.Time) (string, error) {
	htmlOut, err := w.renderer.Render(card, period, now)
	if err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, "html", w.cardFilename(card))
	if err := os.WriteFile(path, []byte(htmlOut), 0o644); err != nil {
		return "", fmt.Errorf("write report for %s: %w", card.Profile.ID, err)
	}

	w.log.Debug("wrote report card",
		"run_id", w.runID,
		"student_id", card.Profile.ID,
		"path", path)
	return path, nil
}

// WriteAll renders and saves every card, returning the written paths.
func (w *Writer) WriteAll(cards []Card, period string, now time.Time) ([]string, error) {
	paths := make([]string, 0, len(cards))
	for _, card := range cards {
		p, err := w.WriteCard(card, period, now)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	w.log.Info("report batch complete", "run_id", w.runID, "cards", len(paths))
	return paths, nil
}

// cardFilename derives a filesystem-safe name for a student's card.
// Two students sharing a display name get the student ID suffixed so
// neither card overwrites the other.
func (w *Writer) cardFilename(card Card) string {
	name := sanitizeName(card.Profile.Name)
	if name == "" {
		name = sanitizeName(card.Profile.ID)
	}
	if w.taken[name] {
		name = name + "_" + sanitizeName(card.Profile.ID)
	}
	w.taken[name] = true
	return name + ".html"
}

func sanitizeName(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, string(filepath.Separator), "_")
}
