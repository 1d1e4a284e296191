// Package style provides the shared styling primitives: brand colors and
// icons used by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal   = lipgloss.Color("#0EA5A4")
	Slate  = lipgloss.Color("#64748B")
	Ink    = lipgloss.Color("#0F172A")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Yellow = lipgloss.Color("#D97706")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)
