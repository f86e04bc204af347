package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarhu/metaprobe/utils"
)

// scanEntry is one processed file in the results list
type scanEntry struct {
	Path       string
	FieldCount int
	HasGPS     bool
	Error      string
}

func (e scanEntry) FilterValue() string { return e.Path }
func (e scanEntry) Title() string       { return utils.TruncateText(filepath.Base(e.Path), 48) }
func (e scanEntry) Description() string {
	if e.Error != "" {
		return fmt.Sprintf("❌ %s", e.Error)
	}
	desc := fmt.Sprintf("✓ %d fields", e.FieldCount)
	if e.HasGPS {
		desc += " 📍 geotagged"
	}
	return desc
}

// ScanModel is the progress view for bulk metadata extraction
type ScanModel struct {
	totalFiles     int
	processedFiles int
	geotagged      int
	failed         int

	overallProgress progress.Model
	fileList        list.Model

	width    int
	height   int
	finished bool
	quitting bool
}

// NewScanModel creates the scan progress model for a batch of files
func NewScanModel(numFiles int) ScanModel {
	fileList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	fileList.Title = "Processed Files"
	fileList.SetShowStatusBar(false)

	return ScanModel{
		totalFiles:      numFiles,
		overallProgress: progress.New(progress.WithDefaultGradient()),
		fileList:        fileList,
	}
}

// Init implements tea.Model
func (m ScanModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetSize(msg.Width-4, msg.Height-8)

	case FileProcessedMsg:
		m.processedFiles = msg.Completed
		if msg.Error != "" {
			m.failed++
		}
		if msg.HasGPS {
			m.geotagged++
		}

		entry := scanEntry{
			Path:       msg.Path,
			FieldCount: msg.FieldCount,
			HasGPS:     msg.HasGPS,
			Error:      msg.Error,
		}
		cmd := m.fileList.InsertItem(len(m.fileList.Items()), entry)
		return m, cmd

	case ScanFinishedMsg:
		m.finished = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.fileList, cmd = m.fileList.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m ScanModel) View() string {
	if m.quitting {
		return "Aborting scan...\n"
	}

	percent := 0.0
	if m.totalFiles > 0 {
		percent = float64(m.processedFiles) / float64(m.totalFiles)
	}

	sections := []string{
		HeaderStyle.Render("metaprobe scan"),
		fmt.Sprintf("Progress: %s (%d/%d)", m.overallProgress.ViewAs(percent), m.processedFiles, m.totalFiles),
		fmt.Sprintf("Geotagged: %d   Failed: %d", m.geotagged, m.failed),
		m.fileList.View(),
		"Controls: [q] Abort",
	}

	return strings.Join(sections, "\n\n")
}

// Finished reports whether the batch ran to completion
func (m ScanModel) Finished() bool {
	return m.finished
}

// Aborted reports whether the user quit before the batch finished
func (m ScanModel) Aborted() bool {
	return m.quitting && !m.finished
}
