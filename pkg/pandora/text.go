package pandora

// Character budgets the service enforces on text fields.
const (
	maxNameLength        = 64
	maxDescriptionLength = 4000
)

// ellipsize truncates s to limit characters, replacing the cut tail
// with a single ellipsis. Strings within the limit are returned
// unchanged. The budget counts characters, not bytes or display
// width.
func ellipsize(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
