package services

import (
	"os"
	"strings"
	"testing"
)

func TestRenderBadgeWritesSVG(t *testing.T) {
	if err := InitBadgeRenderer(t.TempDir()); err != nil {
		t.Fatalf("Failed to init badge renderer: %v", err)
	}

	path, err := RenderBadge("64f1c2d3e4a5b6c7d8e9f0a1", "Fast Typer", "Achieved 60 WPM!")
	if err != nil {
		t.Fatalf("Failed to render badge: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read badge file: %v", err)
	}
	svg := string(data)
	if !strings.Contains(svg, "<svg") {
		t.Errorf("Expected an SVG document, got %q", svg)
	}
	if !strings.Contains(svg, "Fast Typer") || !strings.Contains(svg, "Achieved 60 WPM!") {
		t.Errorf("Expected badge text in SVG, got %q", svg)
	}
}

func TestRenderBadgeRequiresInit(t *testing.T) {
	saved := badgeDir
	badgeDir = ""
	defer func() { badgeDir = saved }()

	if _, err := RenderBadge("u", "t", "d"); err == nil {
		t.Errorf("Expected error when renderer is not initialized")
	}
}
