package main

const defaultSeparator = " │ "

// composeRow merges one animation row and one panel row into a single
// output line bounded by the live terminal width. The animation box is
// the visual anchor: it always comes out at full width, and whatever
// space is left after the separator goes to the panel. On terminals too
// narrow for both, the panel collapses before the animation does.
func composeRow(left, right, sep string, columns int) string {
	avail := columns - visibleWidth(left) - visibleWidth(sep)
	if avail < 0 {
		avail = 0
	}
	return left + sep + truncateANSI(right, avail)
}
