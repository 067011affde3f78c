package sequencer

import _ "embed"

// Version is the release of the sequencer module, read from the VERSION file.
//
//go:embed VERSION
var Version string
