package cmd

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	stepIndexStyle = lipgloss.NewStyle().Foreground(colorMuted).Width(4).Align(lipgloss.Right)
	verbStyle      = lipgloss.NewStyle().Foreground(colorText).Width(16)
	targetStyle    = lipgloss.NewStyle().Foreground(colorMuted).Width(14)
	okStyle        = lipgloss.NewStyle().Foreground(colorSuccess)
	failStyle      = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	failMsgStyle   = lipgloss.NewStyle().Foreground(colorError)

	summaryStyle = lipgloss.NewStyle().Foreground(colorText)
	widgetStyle  = lipgloss.NewStyle().Foreground(colorText).Width(14)
	kindStyle    = lipgloss.NewStyle().Foreground(colorMuted).Width(10)
	attrStyle    = lipgloss.NewStyle().Foreground(colorAccent)
)
