package repository

// window returns the [start, end) range of n rows after offset and limit,
// matching query.Mongo.Search where a zero limit means no limit.
func window(n int, offset, limit *int) (int, int) {
	start, end := 0, n
	if offset != nil {
		start = *offset
	}
	if start > n {
		start = n
	}
	if limit != nil && *limit > 0 && start+*limit < end {
		end = start + *limit
	}
	return start, end
}
