package services

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"
)

var badgeDir string

// Flat SVG badge: gold label panel, grey value panel, widths scaled by text
// length the same way shields-style generators do it.
var badgeTemplate = template.Must(template.New("badge").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="20">
  <rect width="{{.LabelWidth}}" height="20" fill="#d4af37"/>
  <rect x="{{.LabelWidth}}" width="{{.ValueWidth}}" height="20" fill="#555"/>
  <g fill="#fff" font-family="Verdana,sans-serif" font-size="11">
    <text x="{{.LabelMid}}" y="14" text-anchor="middle">{{.Label}}</text>
    <text x="{{.ValueMid}}" y="14" text-anchor="middle">{{.Value}}</text>
  </g>
</svg>
`))

type badgeData struct {
	Label      string
	Value      string
	LabelWidth int
	ValueWidth int
	Width      int
	LabelMid   int
	ValueMid   int
}

// InitBadgeRenderer prepares the artifact directory
func InitBadgeRenderer(dir string) error {
	if dir == "" {
		dir = "uploads/badges"
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create badge directory: %w", err)
	}
	badgeDir = dir
	return nil
}

func textWidth(s string) int {
	return 7*len(s) + 16
}

// RenderBadge writes an SVG badge artifact and returns its path. The caller
// stores the path opaquely; nothing else reads the file back.
func RenderBadge(userID, title, description string) (string, error) {
	if badgeDir == "" {
		return "", fmt.Errorf("badge renderer not initialized")
	}

	data := badgeData{
		Label:      title,
		Value:      description,
		LabelWidth: textWidth(title),
		ValueWidth: textWidth(description),
	}
	data.Width = data.LabelWidth + data.ValueWidth
	data.LabelMid = data.LabelWidth / 2
	data.ValueMid = data.LabelWidth + data.ValueWidth/2

	filename := fmt.Sprintf("badge_%s_%s.svg", userID, time.Now().Format("20060102_150405"))
	path := filepath.Join(badgeDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create badge file: %w", err)
	}
	defer f.Close()

	if err := badgeTemplate.Execute(f, data); err != nil {
		return "", fmt.Errorf("failed to render badge: %w", err)
	}
	return path, nil
}
