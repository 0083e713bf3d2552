package valueobjects

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// ParsePriority keeps unknown values as-is: legacy records carry free-text
// priorities and must round-trip unchanged. Empty defaults to Medium.
func ParsePriority(s string) Priority {
	if s == "" {
		return PriorityMedium
	}
	return Priority(s)
}
