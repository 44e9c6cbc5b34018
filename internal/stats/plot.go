package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	minBarWidth         = 10
	barLabelWidth       = 2
	barChar             = "█"
	colorBar            = "\x1b[32m"
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

// BarWidthFor returns the longest bar that fits in totalWidth columns next
// to the row label and the count.
func BarWidthFor(totalWidth int, s Summary) int {
	if totalWidth <= 0 {
		return minBarWidth
	}
	countWidth := runewidth.StringWidth(fmt.Sprintf("%d", maxCount(s)))
	width := totalWidth - barLabelWidth - 1 - countWidth
	if width < minBarWidth {
		width = minBarWidth
	}
	return width
}

// RenderDistribution prints one horizontal bar per guess count. A width of
// zero sizes the bars to the terminal.
func RenderDistribution(w io.Writer, s Summary, width int, forceColor bool) error {
	if s.Wins == 0 {
		return nil
	}
	if width <= 0 {
		width = BarWidthFor(terminalWidth(), s)
	}
	useColor := shouldUseColor(w, forceColor)
	peak := maxCount(s)

	if _, err := fmt.Fprintln(w, "Guess Distribution"); err != nil {
		return err
	}
	for i, count := range s.Distribution {
		bar := strings.Repeat(barChar, scaleBar(count, peak, width))
		if useColor && bar != "" {
			bar = colorBar + bar + colorReset
		}
		if _, err := fmt.Fprintf(w, "%-*d %s%d\n", barLabelWidth, i+1, bar, count); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func scaleBar(count, peak, width int) int {
	if count <= 0 || peak <= 0 {
		return 0
	}
	n := count * width / peak
	if n == 0 {
		n = 1
	}
	return n
}

func maxCount(s Summary) int {
	peak := 0
	for _, c := range s.Distribution {
		if c > peak {
			peak = c
		}
	}
	return peak
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return terminalWidthBackup
}

func shouldUseColor(w io.Writer, force bool) bool {
	if force {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
