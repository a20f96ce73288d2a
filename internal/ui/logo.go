package ui

import (
	"fmt"
	"os/exec"
	"strings"
)

// createLogo generates the wordmark using figlet when available.
func createLogo(color string) string {
	cmd := exec.Command("figlet", "-f", "slant", "picket")
	output, err := cmd.Output()
	if err == nil && len(output) > 0 {
		return applyLogoColor(string(output), color)
	}

	// Fallback: plain bold wordmark
	return fmt.Sprintf("[%s::b]picket[-]", color)
}

// applyLogoColor wraps every non-blank line in a tview color tag.
func applyLogoColor(text, color string) string {
	open := fmt.Sprintf("[%s]", color)
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for lineIdx, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		result.WriteString(open)
		for _, r := range line {
			result.WriteRune(r)
		}
		result.WriteString("[-]")

		if lineIdx < len(lines)-1 {
			result.WriteString("\n")
		}
	}

	return result.String()
}
