package swat

// FirstAbove and ScreenAt tell tests which cell stopped the walk.
var (
	FirstAbove = firstAbove
	ScreenAt   = screenAt
)
