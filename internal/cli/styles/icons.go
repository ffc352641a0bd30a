package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go gopher
	IconGithub    = "\uf09b" // github
	IconArrow     = "\uf061" // arrow right

	// Modes
	IconMoon    = "\uf186" // moon
	IconSun     = "\uf185" // sun
	IconDesktop = "\uf108" // desktop

	// Status
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconFolder  = "\uf07b" // folder
	IconClock   = "\uf017" // clock
	IconEye     = "\uf06e" // eye
)
