package ui

import "fmt"

// App defines application-level display settings.
var App = struct {
	Name string

	// %s name, %d sources, %d valid, %d found
	HeaderFormat string
}{
	Name:         "utccheck",
	HeaderFormat: " %s | sources: %d | valid: %d of %d ",
}

// FormatHeader returns the browser header line.
func FormatHeader(sources, valid, found int) string {
	return fmt.Sprintf(App.HeaderFormat, App.Name, sources, valid, found)
}

// Layout defines the browser's sizing.
var Layout = struct {
	SourcesWidth int // left panel; hidden when there is a single source

	FindingsRatio int
	DetailsRatio  int

	HeaderHeight    int
	StatusBarHeight int

	DigestDisplayLen int
}{
	SourcesWidth: 30,

	FindingsRatio: 1,
	DetailsRatio:  1,

	HeaderHeight:    1,
	StatusBarHeight: 1,

	DigestDisplayLen: 12,
}
