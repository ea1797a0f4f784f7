package searcher

// ColumnOrder returns the fixed column visitation order for a board of
// the given width: the center column first, then alternating outward.
// Central columns touch more potential lines, so visiting them first
// raises the alpha-beta cutoff rate. For width 7 this yields
// {3, 4, 2, 5, 1, 6, 0}.
func ColumnOrder(width int) []int {
	if width <= 0 {
		return nil
	}
	order := make([]int, 0, width)
	center := width / 2
	order = append(order, center)
	for step := 1; len(order) < width; step++ {
		if right := center + step; right < width {
			order = append(order, right)
		}
		if left := center - step; left >= 0 {
			order = append(order, left)
		}
	}
	return order
}
