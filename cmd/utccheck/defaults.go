package main

import "time"

// Default configuration values, used when neither the config file, the
// environment nor a flag sets them.
const (
	DefaultConfigFile   = "utccheck.yaml"
	DefaultFetchTimeout = 10 * time.Second
	DefaultDisplayLimit = 10
	DefaultJobs         = 4
)

// DefaultUserAgent is sent with every page request unless overridden.
var DefaultUserAgent = "utccheck/" + version

// Environment variables that override the config file.
const (
	EnvFetchTimeout = "UTCCHECK_FETCH_TIMEOUT"
	EnvDisplayLimit = "UTCCHECK_DISPLAY_LIMIT"
	EnvUserAgent    = "UTCCHECK_USER_AGENT"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1 // fetch error, unreadable file, invalid validate input
	ExitUsage   = 2 // bad flags, arguments or config
)

const (
	MainTitle   = "⏱  utccheck"
	MainSummary = "★  Find and validate UTC ISO-8601 timestamps in text, pages and files"
)

// Source names used in reports when the text has no file or URL.
const (
	SourceArgs  = "<args>"
	SourceStdin = "<stdin>"
	SourceInput = "<input>"
)

// Messages for consistent CLI output.
const (
	MsgMenuTitle    = "What do you want to scan?"
	MsgGoodbye      = "Goodbye."
	MsgEnterText    = "Text to scan"
	MsgEnterURL     = "Page URL"
	MsgEnterPath    = "File path"
	MsgFetching     = "Fetching %s"
	MsgFetched      = "Fetched %s in %s"
	MsgFetchFailed  = "Could not fetch %s"
	MsgWatching     = "Watching %s (Ctrl+C to stop)"
	MsgFileRemoved  = "file was removed or renamed"
	MsgWaitingAgain = "waiting for it to come back"
	MsgScanned      = "scanned at %s"
)

// Flag descriptions shared by several commands.
const (
	FlagDescLimit    = "Show at most N results (0 shows all)"
	FlagDescTimeout  = "Page fetch timeout, e.g. 5s"
	FlagDescTextOnly = "Scan only the visible text of HTML pages"
	FlagDescExplain  = "Explain why each invalid candidate was rejected"
	FlagDescBrowse   = "Open the results browser (terminal only)"
	FlagDescAll      = "List invalid candidates too"
)
