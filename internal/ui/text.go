// Package ui lays out and draws the popup, notifications, minimap and menu
// over the world view.
package ui

import "strings"

// Rect is a screen-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) is inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Measurer is the part of the renderer layout needs.
type Measurer interface {
	MeasureText(text string, size float64) (width, height float64)
}

// WrapText splits text into lines no wider than maxWidth. A single word
// wider than maxWidth gets a line of its own. Explicit newlines are kept.
func WrapText(m Measurer, text string, size, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var currentLine string
		for _, word := range words {
			candidate := word
			if currentLine != "" {
				candidate = currentLine + " " + word
			}
			if w, _ := m.MeasureText(candidate, size); w > maxWidth && currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = word
			} else {
				currentLine = candidate
			}
		}
		lines = append(lines, currentLine)
	}
	return lines
}
