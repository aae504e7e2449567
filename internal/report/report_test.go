package report

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/drillreport/internal/aggregate"
	"github.com/abhisek/drillreport/internal/classify"
	"github.com/abhisek/drillreport/internal/record"
)

func testProfiles(t *testing.T) []classify.Profile {
	t.Helper()
	records := []record.Record{
		{StudentID: "s1", Name: "AoiTanaka", Date: "2026/02/02", Topic: "algebra", Attempted: 100, Correct: 80},
		{StudentID: "s1", Name: "AoiTanaka", Date: "2026/02/02", Topic: "geometry", Attempted: 100, Correct: 90},
		{StudentID: "s2", Name: "RenSato", Date: "2026/02/02", Topic: "algebra", Attempted: 100, Correct: 20},
		{StudentID: "s2", Name: "RenSato", Date: "2026/02/02", Topic: "geometry", Attempted: 100, Correct: 30},
	}
	res, err := aggregate.Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return classify.All(res)
}

func TestBuildCard_PopulatesCommentsAndAdvice(t *testing.T) {
	profiles := testProfiles(t)
	card := BuildCard(profiles[0])

	if card.StrictComment == "" || card.EncouragingComment == "" {
		t.Error("expected both persona comments to be non-empty")
	}
	if len(card.Advice) == 0 || len(card.Advice) > 3 {
		t.Errorf("advice count = %d, want 1..3", len(card.Advice))
	}
}

func TestRender_ContainsProfileData(t *testing.T) {
	profiles := testProfiles(t)
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	card := BuildCard(profiles[0]) // AoiTanaka, 170/200 = 85%, excellent
	html, err := renderer.Render(card, "February 2026", time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"AoiTanaka",
		"February 2026",
		"85.0%",
		"evaluation-excellent",
		"Excellent",
		"algebra",
		"geometry",
		"February 5, 2026",
		strictTeacher,
		encouragingTeacher,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered card missing %q", want)
		}
	}
}

func TestRender_CommentNewlinesBecomeBreaks(t *testing.T) {
	profiles := testProfiles(t)
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	card := BuildCard(profiles[1]) // weak student: strict comment has 3 fragments
	if !strings.Contains(card.StrictComment, "\n") {
		t.Fatal("expected multi-fragment strict comment")
	}
	html, err := renderer.Render(card, "", time.Now())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "<br>") {
		t.Error("expected comment newlines rendered as <br>")
	}
}

func TestRender_EmptyPanelsShowPlaceholders(t *testing.T) {
	// Single student cohort: gaps are all zero, nothing weak or strong.
	records := []record.Record{
		{StudentID: "s1", Name: "Solo", Date: "2026/02/02", Topic: "algebra", Attempted: 10, Correct: 5},
	}
	res, err := aggregate.Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	card := BuildCard(classify.All(res)[0])

	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	html, err := renderer.Render(card, "", time.Now())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "None yet") || !strings.Contains(html, ">None<") {
		t.Error("expected placeholder rows for empty strong/weak panels")
	}
}

func TestWriter_WritesOneFilePerStudent(t *testing.T) {
	dir := t.TempDir()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	w, err := NewWriter(dir, log)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if w.RunID() == "" {
		t.Error("expected a run ID")
	}

	cards := BuildCards(testProfiles(t))
	paths, err := w.WriteAll(cards, "February 2026", time.Now())
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}

	want := filepath.Join(dir, "html", "AoiTanaka.html")
	if paths[0] != want {
		t.Errorf("path = %s, want %s", paths[0], want)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read written card: %v", err)
	}
	if !strings.Contains(string(data), "AoiTanaka") {
		t.Error("written card missing student name")
	}
}

func TestCardFilename_FallsBackToID(t *testing.T) {
	w, err := NewWriter(t.TempDir(), slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	card := Card{Profile: classify.Profile{Student: aggregate.Student{ID: "s9"}}}
	if got := w.cardFilename(card); got != "s9.html" {
		t.Errorf("filename = %s, want s9.html", got)
	}
}

func TestWriter_DuplicateNamesGetDistinctFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	// Two different students whose display names normalize identically.
	records := []record.Record{
		{StudentID: "s1", Name: "AoiTanaka", Date: "2026/02/02", Topic: "algebra", Attempted: 10, Correct: 8},
		{StudentID: "s2", Name: "AoiTanaka", Date: "2026/02/02", Topic: "algebra", Attempted: 10, Correct: 2},
	}
	res, err := aggregate.Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	cards := BuildCards(classify.All(res))

	paths, err := w.WriteAll(cards, "", time.Now())
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}
	if paths[0] == paths[1] {
		t.Fatalf("both cards written to %s", paths[0])
	}

	want := filepath.Join(dir, "html", "AoiTanaka_s2.html")
	if paths[1] != want {
		t.Errorf("second path = %s, want %s", paths[1], want)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing written card %s: %v", p, err)
		}
	}
}

func TestConsoleTables(t *testing.T) {
	profiles := testProfiles(t)
	records := []record.Record{
		{StudentID: "s1", Name: "A", Date: "2026/02/02", Topic: "algebra", Attempted: 10, Correct: 5},
	}
	res, err := aggregate.Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if out := PopulationTable(res.Population); !strings.Contains(out, "algebra") {
		t.Errorf("population table missing topic: %q", out)
	}
	if out := CohortTable(profiles); !strings.Contains(out, "AoiTanaka") {
		t.Errorf("cohort table missing student: %q", out)
	}
	if out := RunSummary(2, 3, "out"); !strings.Contains(out, "2 report cards") {
		t.Errorf("run summary = %q", out)
	}
}
