// Package theme centralizes the Lip Gloss styles of the full-screen views.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme groups styles per view.
type Theme struct {
	Help  lipgloss.Style
	Chat  ChatTheme
	Diary DiaryTheme
}

// ChatTheme styles the Spanish practice chat.
type ChatTheme struct {
	Title lipgloss.Style
	User  lipgloss.Style
	Bot   lipgloss.Style
	Popup lipgloss.Style
}

// DiaryTheme styles the calendar browser and its entry list.
type DiaryTheme struct {
	Title  lipgloss.Style
	Date   lipgloss.Style
	Game   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	accent := lipgloss.Color("9")
	bubble := lipgloss.NewStyle().Padding(0, 1)

	return Theme{
		Help: lipgloss.NewStyle().Faint(true),
		Chat: ChatTheme{
			Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
			User:  bubble.Background(accent).Foreground(lipgloss.Color("15")),
			Bot:   bubble.Background(lipgloss.Color("254")).Foreground(lipgloss.Color("0")),
			Popup: bubble.Border(lipgloss.RoundedBorder()).BorderForeground(accent),
		},
		Diary: DiaryTheme{
			Title:  lipgloss.NewStyle().Bold(true).Underline(true),
			Date:   lipgloss.NewStyle().Bold(true),
			Game:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Faint(true),
			Status: lipgloss.NewStyle().Faint(true),
			Error:  lipgloss.NewStyle().Foreground(accent),
		},
	}
}
