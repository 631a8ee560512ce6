package tools

// ValidID reports whether id can reference a stored entity. Ids are assigned
// by the database starting at 1, so zero and negatives never can.
func ValidID(id int64) bool {
	return id > 0
}

func ValidIDs(ids ...int64) bool {
	for _, id := range ids {
		if !ValidID(id) {
			return false
		}
	}
	return true
}
