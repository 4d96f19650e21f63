package tui

type stage int

const (
	stageList stage = iota
	stageSearch
	stageDetail
)

type tab int

const (
	tabBrowse tab = iota
	tabBookmarks
)

const heroTagline = "Your literature shelf, bookmarks, and AI notes."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
)

const searchPlaceholder = "Search by title, author, or paper ID…"
