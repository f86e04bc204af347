package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewDuplicatesModel(t *testing.T) {
	duplicates := map[string][]string{
		"ABC123": {"file1.jpg", "file2.jpg"},
		"DEF456": {"file3.mp4", "file4.mp4", "file5.mp4"},
	}

	model := NewDuplicatesModel(duplicates)

	if len(model.groups) != 2 {
		t.Errorf("Expected 2 groups, got %d", len(model.groups))
	}

	// Groups are ordered by hash for a stable display
	if model.groups[0].Hash != "ABC123" {
		t.Errorf("Expected first group ABC123, got %s", model.groups[0].Hash)
	}

	if model.currentGroup != 0 {
		t.Errorf("Expected currentGroup to be 0, got %d", model.currentGroup)
	}

	if model.currentFile != 0 {
		t.Errorf("Expected currentFile to be 0, got %d", model.currentFile)
	}
}

func TestNewDuplicatesModelEmptyInput(t *testing.T) {
	model := NewDuplicatesModel(map[string][]string{})

	if len(model.groups) != 0 {
		t.Errorf("Expected 0 groups for empty input, got %d", len(model.groups))
	}

	view := model.View()
	if !strings.Contains(view, "No duplicate files found") {
		t.Errorf("Expected empty state message, got: %s", view)
	}
}

func TestDuplicateGroupStructure(t *testing.T) {
	duplicates := map[string][]string{
		"ABC123": {"file1.jpg", "file2.jpg"},
	}

	model := NewDuplicatesModel(duplicates)

	if len(model.groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(model.groups))
	}

	group := model.groups[0]
	if group.Hash != "ABC123" {
		t.Errorf("Expected hash 'ABC123', got '%s'", group.Hash)
	}

	if len(group.Files) != 2 {
		t.Errorf("Expected 2 files, got %d", len(group.Files))
	}

	if len(group.Selected) != 2 {
		t.Errorf("Expected 2 selection states, got %d", len(group.Selected))
	}

	// Ensure no files are selected by default
	for i, selected := range group.Selected {
		if selected {
			t.Errorf("Expected file %d to be unselected by default", i)
		}
	}
}

func TestDuplicatesModelSelectAllButFirst(t *testing.T) {
	duplicates := map[string][]string{
		"ABC123": {"file1.jpg", "file2.jpg", "file3.jpg"},
	}

	model := NewDuplicatesModel(duplicates)
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m := updated.(DuplicatesModel)

	group := m.groups[0]
	if group.Selected[0] {
		t.Error("Expected the first copy to stay unselected")
	}
	if !group.Selected[1] || !group.Selected[2] {
		t.Errorf("Expected remaining copies to be selected, got %v", group.Selected)
	}

	// Enter moves to the confirmation prompt for the selected files
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(DuplicatesModel)
	if !m.confirming {
		t.Error("Expected confirmation prompt after enter with selections")
	}
	if len(m.pending) != 2 {
		t.Errorf("Expected 2 pending deletions, got %d", len(m.pending))
	}

	// Declining returns to browsing with nothing pending
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(DuplicatesModel)
	if m.confirming {
		t.Error("Expected confirmation to be dismissed")
	}
	if m.pending != nil {
		t.Errorf("Expected pending deletions to be cleared, got %v", m.pending)
	}
}

func TestDuplicatesModelNavigation(t *testing.T) {
	duplicates := map[string][]string{
		"ABC123": {"file1.jpg", "file2.jpg"},
		"DEF456": {"file3.jpg", "file4.jpg"},
	}

	model := NewDuplicatesModel(duplicates)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	m := updated.(DuplicatesModel)
	if m.currentFile != 1 {
		t.Errorf("Expected cursor on file 1, got %d", m.currentFile)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(DuplicatesModel)
	if m.currentGroup != 1 {
		t.Errorf("Expected group 1, got %d", m.currentGroup)
	}
	if m.currentFile != 0 {
		t.Errorf("Expected cursor to reset on group change, got %d", m.currentFile)
	}

	// Cursor stays in bounds at the edges
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(DuplicatesModel)
	if m.currentGroup != 1 {
		t.Errorf("Expected group to stay at the last index, got %d", m.currentGroup)
	}
}

func TestDuplicatesModelDeletionBookkeeping(t *testing.T) {
	duplicates := map[string][]string{
		"ABC123": {"file1.jpg", "file2.jpg"},
	}

	model := NewDuplicatesModel(duplicates)
	updated, _ := model.Update(fileDeletedMsg{Path: "file2.jpg", Success: true})
	m := updated.(DuplicatesModel)

	group := m.groups[0]
	if !group.Deleted[1] {
		t.Error("Expected file2.jpg to be marked deleted")
	}
	if group.Deleted[0] {
		t.Error("Expected file1.jpg to stay untouched")
	}
	if m.statusLine == "" {
		t.Error("Expected a status line after deletion")
	}
}
