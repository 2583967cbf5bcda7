// Package constants defines application-wide constants and configuration values.
package constants

// Version information for the application.
const (
	// GithubOwner is the owner of the GitHub repository.
	GithubOwner = "hibare"

	// ProgramIdentifier is the identifier for the application.
	ProgramIdentifier = "ArrView"
)

// Plot geometry related constants.
const (
	// DefaultPlotWidth is the default plot width in inches.
	DefaultPlotWidth = 8

	// DefaultPlotHeight is the default plot height in inches.
	DefaultPlotHeight = 6
)

// DefaultOutputExt is the extension appended to the input path when no
// output path is given.
const DefaultOutputExt = ".png"
