package ui

import (
	"image/color"

	"chosenoffset.com/wayfarer/internal/interaction"
	"chosenoffset.com/wayfarer/internal/render"
)

// Popup styling.
const (
	PopupMaxWidth   = 380.0
	PopupMargin     = 20.0
	PopupPadding    = 16.0
	TitleSize       = 20.0
	BodySize        = 16.0
	OptionHeight    = 36.0
	OptionGap       = 8.0
	lineSpacing     = 1.4
	popupBottomBand = 40.0
)

var (
	popupBg      = color.RGBA{250, 246, 235, 240}
	popupBorder  = color.RGBA{120, 100, 80, 255}
	popupText    = color.RGBA{60, 45, 30, 255}
	optionBg     = color.RGBA{230, 215, 190, 255}
	optionBorder = color.RGBA{160, 130, 100, 255}
)

// OptionBox is a laid out popup button.
type OptionBox struct {
	Rect   Rect
	Option interaction.Option
}

// PopupLayout is the popup's geometry for one session.
type PopupLayout struct {
	Box     Rect
	Title   string
	Lines   []string
	Options []OptionBox
}

// LayoutPopup places the popup for a session, horizontally centred near the
// bottom of the screen. A closed session has an empty layout.
func LayoutPopup(m Measurer, s interaction.Session, screenW, screenH int) PopupLayout {
	if s.Mode == interaction.ModeClosed {
		return PopupLayout{}
	}

	width := float64(screenW) - 2*PopupMargin
	if width > PopupMaxWidth {
		width = PopupMaxWidth
	}
	inner := width - 2*PopupPadding

	lines := WrapText(m, s.Content, BodySize, inner)
	height := PopupPadding + TitleSize*lineSpacing +
		float64(len(lines))*BodySize*lineSpacing +
		float64(len(s.Options))*(OptionHeight+OptionGap) + PopupPadding

	x := (float64(screenW) - width) / 2
	y := float64(screenH) - height - popupBottomBand
	if y < PopupMargin {
		y = PopupMargin
	}

	layout := PopupLayout{
		Box:   Rect{X: x, Y: y, W: width, H: height},
		Title: s.Title,
		Lines: lines,
	}

	oy := y + PopupPadding + TitleSize*lineSpacing + float64(len(lines))*BodySize*lineSpacing + OptionGap
	for _, opt := range s.Options {
		layout.Options = append(layout.Options, OptionBox{
			Rect:   Rect{X: x + PopupPadding, Y: oy, W: inner, H: OptionHeight},
			Option: opt,
		})
		oy += OptionHeight + OptionGap
	}
	return layout
}

// Hit is the result of a pointer press against the popup.
type Hit int

const (
	HitOutside Hit = iota
	HitBody
	HitOption
)

// HitTest resolves a press at (x, y). For HitOption the option's index is
// returned as well.
func (l PopupLayout) HitTest(x, y float64) (Hit, int) {
	for i, ob := range l.Options {
		if ob.Rect.Contains(x, y) {
			return HitOption, i
		}
	}
	if l.Box.Contains(x, y) {
		return HitBody, -1
	}
	return HitOutside, -1
}

// Empty reports whether there is nothing to draw.
func (l PopupLayout) Empty() bool {
	return l.Box.W == 0
}

// DrawPopup draws a laid out popup.
func DrawPopup(r render.Renderer, screen render.Image, l PopupLayout) {
	if l.Empty() {
		return
	}
	b := l.Box
	r.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), popupBg)
	r.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, popupBorder)

	y := b.Y + PopupPadding
	r.DrawText(screen, l.Title, b.X+PopupPadding, y, popupText, TitleSize)
	y += TitleSize * lineSpacing
	for _, line := range l.Lines {
		r.DrawText(screen, line, b.X+PopupPadding, y, popupText, BodySize)
		y += BodySize * lineSpacing
	}

	for _, ob := range l.Options {
		o := ob.Rect
		r.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), optionBg)
		r.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 1, optionBorder)
		tw, th := r.MeasureText(ob.Option.Label, BodySize)
		r.DrawText(screen, ob.Option.Label, o.X+(o.W-tw)/2, o.Y+(o.H-th)/2, popupText, BodySize)
	}
}
