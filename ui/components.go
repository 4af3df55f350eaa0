package ui

import (
	"strings"
)

// Component represents a reusable UI component
type Component interface {
	Render() string
}

// HeaderComponent renders styled headers
type HeaderComponent struct {
	Text   string
	Margin bool
}

// NewHeader creates a new header component
func NewHeader(text string) *HeaderComponent {
	return &HeaderComponent{Text: text}
}

// WithMargin adds bottom margin to the header
func (h *HeaderComponent) WithMargin() *HeaderComponent {
	h.Margin = true
	return h
}

// Render outputs the styled header
func (h *HeaderComponent) Render() string {
	style := Header
	if h.Margin {
		style = style.MarginBottom(1)
	}
	return style.Render(h.Text)
}

// LabelValueComponent renders label: value pairs
type LabelValueComponent struct {
	Label string
	Value string
}

// NewLabelValue creates a new label-value component
func NewLabelValue(label, value string) *LabelValueComponent {
	return &LabelValueComponent{Label: label, Value: value}
}

// Render outputs the styled label-value pair
func (lv *LabelValueComponent) Render() string {
	return Label.Render(lv.Label) + " " + Value.Render(lv.Value)
}

// StatusComponent renders a status line in the status color
type StatusComponent struct {
	Status string
	Text   string
	Icon   string
}

// NewStatus creates a new status component
func NewStatus(status, text string) *StatusComponent {
	return &StatusComponent{Status: status, Text: text}
}

// WithIcon adds an icon to the status
func (s *StatusComponent) WithIcon(icon string) *StatusComponent {
	s.Icon = icon
	return s
}

// Render outputs the styled status
func (s *StatusComponent) Render() string {
	text := s.Text
	if s.Icon != "" {
		text = s.Icon + " " + text
	}
	return StatusColor(s.Status).Render(text)
}

// ListComponent renders bulleted lists
type ListComponent struct {
	Items  []string
	Bullet string
	Indent int
}

// NewList creates a new list component
func NewList(items []string) *ListComponent {
	return &ListComponent{Items: items, Bullet: "•", Indent: 2}
}

// Render outputs the styled list
func (l *ListComponent) Render() string {
	lines := make([]string, 0, len(l.Items))
	indent := strings.Repeat(" ", l.Indent)

	for _, item := range l.Items {
		lines = append(lines, indent+Muted.Render(l.Bullet)+" "+item)
	}

	return strings.Join(lines, "\n")
}
