package models

import (
	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/charmbracelet/bubbles/spinner"
)

// EntryKind identifies what a transcript entry shows.
type EntryKind int

const (
	EntryQuestion EntryKind = iota
	EntryDecision
	EntryTool
	EntryAnswer
	EntryError
)

// Entry is one line (or block) of the progress transcript.
type Entry struct {
	Kind EntryKind

	// City for questions and answers, tool name for tool entries.
	Title string

	// Prompt, decision summary, request display, answer text or error message.
	Text string

	// Tool entries only.
	Display tool.ToolDisplay
	Content string
	Running bool
}

// State holds everything the views render.
type State struct {
	Width  int
	Height int

	Entries []Entry

	StatusPhase   string // "thinking", "executing", "done", "error" or ""
	StatusMessage string
	Spinner       spinner.Model
	DotCount      int

	CurrentModel string
	Completed    int
	Total        int
	Failed       bool
}
