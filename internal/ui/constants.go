package ui

// TView color tags
const (
	TagLabel   = "[yellow]" // labels like "Line:"
	TagValue   = "[white]"  // values
	TagSuccess = "[green]"
	TagError   = "[red]"
	TagMuted   = "[gray]"
	TagReset   = "[-]"      // reset foreground
	TagEnd     = "[-:-:-]"  // reset foreground, background and attributes
	TagCaret   = "[red::b]" // pointer under the offending component
)

// Panel titles (with padding for borders)
const (
	PanelFindings = " Findings "
	PanelDetails  = " Details "
	PanelSources  = " Sources "
)

// Status bar hints
const (
	HintsBrowser = " q quit  j/k navigate  g/G top/bottom  h/l panels  v valid only "
)

// Unicode status indicators
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
)

// Detail panel labels
const (
	LabelValue    = "Value:"
	LabelSource   = "Source:"
	LabelPosition = "Position:"
	LabelVerdict  = "Verdict:"
	LabelCode     = "Code:"
	LabelReason   = "Reason:"
	LabelDigest   = "Digest:"
)

// Empty state messages
const (
	MsgNoFindings  = "No timestamps found"
	MsgLoadFailed  = "Source could not be loaded"
	MsgValidFilter = "showing valid only"
)
