package ui

// Messages sent from the extraction pipeline into the scan TUI

// FileProcessedMsg reports one finished file
type FileProcessedMsg struct {
	Path       string
	FieldCount int
	HasGPS     bool
	Error      string
	Completed  int
	Total      int
}

// ScanFinishedMsg signals that the whole batch is done
type ScanFinishedMsg struct{}
