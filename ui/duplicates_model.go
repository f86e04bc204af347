package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkarhu/metaprobe/utils"
)

// DuplicateGroup is a set of media files with identical content
type DuplicateGroup struct {
	Hash     string
	Files    []string
	Sizes    []int64
	Selected []bool
	Deleted  []bool
}

// fileDeletedMsg reports the outcome of removing one selected file
type fileDeletedMsg struct {
	Path    string
	Success bool
	Err     error
}

// DuplicatesModel is the interactive view for reviewing and deleting
// duplicate media files found by content hash
type DuplicatesModel struct {
	groups       []DuplicateGroup
	currentGroup int
	currentFile  int

	confirming bool
	pending    []string
	statusLine string
	showHelp   bool

	width    int
	height   int
	quitting bool
}

// NewDuplicatesModel builds the model from hash -> file groups
func NewDuplicatesModel(duplicates map[string][]string) DuplicatesModel {
	hashes := make([]string, 0, len(duplicates))
	for hash := range duplicates {
		hashes = append(hashes, hash)
	}
	sort.Strings(hashes)

	groups := make([]DuplicateGroup, 0, len(hashes))
	for _, hash := range hashes {
		files := duplicates[hash]
		sizes := make([]int64, len(files))
		for i, f := range files {
			if fi, err := os.Stat(f); err == nil {
				sizes[i] = fi.Size()
			}
		}
		groups = append(groups, DuplicateGroup{
			Hash:     hash,
			Files:    files,
			Sizes:    sizes,
			Selected: make([]bool, len(files)),
			Deleted:  make([]bool, len(files)),
		})
	}

	return DuplicatesModel{groups: groups, showHelp: true}
}

// Init implements tea.Model
func (m DuplicatesModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m DuplicatesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirmation(msg)
		}
		return m.updateBrowsing(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case fileDeletedMsg:
		m.applyDeletion(msg)
	}

	return m, nil
}

func (m DuplicatesModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.groups) == 0 {
		if key := msg.String(); key == "q" || key == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	group := &m.groups[m.currentGroup]

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "h", "?":
		m.showHelp = !m.showHelp

	case "up", "k":
		if m.currentFile > 0 {
			m.currentFile--
		}

	case "down", "j":
		if m.currentFile < len(group.Files)-1 {
			m.currentFile++
		}

	case "left", "p":
		if m.currentGroup > 0 {
			m.currentGroup--
			m.currentFile = 0
		}

	case "right", "n":
		if m.currentGroup < len(m.groups)-1 {
			m.currentGroup++
			m.currentFile = 0
		}

	case " ":
		group.Selected[m.currentFile] = !group.Selected[m.currentFile]

	case "a": // keep the first copy, select the rest
		for i := range group.Selected {
			group.Selected[i] = i > 0 && !group.Deleted[i]
		}

	case "c":
		for i := range group.Selected {
			group.Selected[i] = false
		}

	case "enter":
		m.pending = m.selectedFiles()
		if len(m.pending) > 0 {
			m.confirming = true
		}
	}

	return m, nil
}

func (m DuplicatesModel) updateConfirmation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		return m, m.deleteSelected()

	case "n", "N", "esc", "ctrl+c":
		m.confirming = false
		m.pending = nil
	}

	return m, nil
}

// selectedFiles collects selections across every group
func (m DuplicatesModel) selectedFiles() []string {
	var selected []string
	for _, group := range m.groups {
		for i, on := range group.Selected {
			if on && !group.Deleted[i] {
				selected = append(selected, group.Files[i])
			}
		}
	}
	return selected
}

// deleteSelected removes the pending files one command per file so the
// UI can report each outcome as it lands
func (m DuplicatesModel) deleteSelected() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.pending))
	for _, path := range m.pending {
		p := path
		cmds = append(cmds, func() tea.Msg {
			err := os.Remove(p)
			return fileDeletedMsg{Path: p, Success: err == nil, Err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (m *DuplicatesModel) applyDeletion(msg fileDeletedMsg) {
	if !msg.Success {
		m.statusLine = ErrorStyle.Render(fmt.Sprintf("❌ Failed to delete %s: %v", filepath.Base(msg.Path), msg.Err))
		return
	}

	for g := range m.groups {
		group := &m.groups[g]
		for i, f := range group.Files {
			if f == msg.Path {
				group.Deleted[i] = true
				group.Selected[i] = false
			}
		}
	}
	m.statusLine = SuccessStyle.Render(fmt.Sprintf("🗑  Deleted %s", filepath.Base(msg.Path)))
}

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	deletedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
)

// View implements tea.Model
func (m DuplicatesModel) View() string {
	if m.quitting {
		return "Done.\n"
	}

	if len(m.groups) == 0 {
		return HeaderStyle.Render("metaprobe duplicates") + "\n\nNo duplicate files found.\n\nPress q to quit.\n"
	}

	group := m.groups[m.currentGroup]

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("metaprobe duplicates"))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Group %d/%d, hash %s (%d files)",
		m.currentGroup+1, len(m.groups), group.Hash, len(group.Files))))
	b.WriteString("\n\n")

	for i, file := range group.Files {
		cursor := "  "
		if i == m.currentFile {
			cursor = cursorStyle.Render("> ")
		}

		marker := "[ ]"
		if group.Selected[i] {
			marker = selectedStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %s (%s)", cursor, marker, file, utils.FormatFileSize(group.Sizes[i]))
		if group.Deleted[i] {
			line = deletedStyle.Render(fmt.Sprintf("  [-] %s (deleted)", file))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.confirming {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Delete %d selected file(s)? [y/N]", len(m.pending))))
		b.WriteString("\n")
	}

	if m.statusLine != "" {
		b.WriteString("\n" + m.statusLine + "\n")
	}

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(FieldStyle.Render("↑/↓ move  ←/→ group  space select  a select copies  c clear  enter delete  h help  q quit"))
		b.WriteString("\n")
	}

	return b.String()
}
