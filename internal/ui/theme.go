package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LifePilot theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconPilot   = "🧭"
	IconTask    = "📋"
	IconRoutine = "🔁"
	IconJournal = "📓"
	IconDone    = "✅"
	IconOpen    = "⬜"
	IconUser    = "👤"
	IconSparkle = "✨"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func PriorityText(priority string) string {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "high":
		return Bad.Render("high")
	case "medium":
		return Warn.Render("medium")
	case "low":
		return Good.Render("low")
	default:
		return Muted.Render(priority)
	}
}

func MoodText(mood string) string {
	switch strings.ToLower(strings.TrimSpace(mood)) {
	case "happy":
		return "😄 happy"
	case "content":
		return "🙂 content"
	case "neutral":
		return "😐 neutral"
	case "sad":
		return "😢 sad"
	case "stressed":
		return "😫 stressed"
	default:
		return mood
	}
}

func CheckBox(completed bool) string {
	if completed {
		return IconDone
	}
	return IconOpen
}
