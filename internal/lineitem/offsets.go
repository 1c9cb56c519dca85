// Package lineitem turns invoice text lines into items using a vendor
// profile's item regex and field offsets.
//
// Item lines are read from the end: the description has a variable number
// of words, but the columns after it sit at fixed distances from the last
// token.
package lineitem

// ValidOffsets reports whether every offset, added to offsetStart (the index
// of the last token), lands inside [0, offsetStart]. Token 0 holds the item
// code; a line without enough trailing columns fails this check.
func ValidOffsets(offsetStart, nameOffset, unitsOffset, unitCostOffset int) bool {
	for _, o := range [...]int{nameOffset, unitsOffset, unitCostOffset} {
		idx := offsetStart + o
		if idx < 0 || idx > offsetStart {
			return false
		}
	}
	return true
}
