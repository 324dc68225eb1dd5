package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosAlive = "@"
	gridPosDead  = "#"
	separator    = "="

	clearCmd = "clear"
)

// Renderer displays generations between steps
type Renderer interface {
	Display(b *Board)
	Clear()
}

// Render draws the board as height rows of width glyphs between separator lines,
// followed by a blank line.
func Render(b *Board) string {
	var sb strings.Builder
	line := strings.Repeat(separator, b.width)

	sb.WriteString(line)
	sb.WriteByte('\n')
	for y := range b.height {
		for x := range b.width {
			if b.IsAlive(Coord{X: x, Y: y}) {
				sb.WriteString(gridPosAlive)
			} else {
				sb.WriteString(gridPosDead)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(line)
	sb.WriteString("\n\n")
	return sb.String()
}

// TerminalRenderer writes boards as text
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the board to the terminal
func (r *TerminalRenderer) Display(b *Board) {
	fmt.Fprint(r.out(), Render(b))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
