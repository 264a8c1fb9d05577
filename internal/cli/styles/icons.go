package styles

// Nerd Font icons.
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher
	IconCheck     = "" // check
	IconX         = "" // x
	IconWarning   = "" // warning
	IconPackage   = "" // archive
	IconImage     = "" // image file
	IconFolder    = "" // folder
	IconConfig    = "" // config
)

const (
	cursorEmpty    = "  "
	cursorSelected = "▸ " // ▸
)
