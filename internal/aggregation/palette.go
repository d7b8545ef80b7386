package aggregation

// Palette holds the ordered slice colors for each kind.
type Palette struct {
	Income  []string
	Expense []string
}

// DefaultPalette: greens for income, pastels for expenses. Treat as read-only.
var DefaultPalette = Palette{
	Income: []string{
		"#CFFFD0", "#B8F9B8", "#A8F0A8", "#98E998", "#88E788",
		"#78DD78", "#68D168", "#58C658", "#48BA48", "#38AD38",
	},
	Expense: []string{
		"#FFB3BA", "#FFD2B3", "#FFF4B3", "#B3E5FF", "#D4B3FF",
		"#E3B3FF", "#F7B3FF", "#E6FFFF", "#FFF9D6", "#FFE9B3",
		"#FADADD", "#FBE8EB", "#FFEDC2", "#FFF0F5", "#FFCCE5",
		"#FAF0DD", "#F3E5AB", "#ADD8E6", "#D6C8FF", "#F5CCFF",
	},
}

// pick returns the i-th color, wrapping around once the list is exhausted.
func pick(colors []string, i int) string {
	if len(colors) == 0 {
		return ""
	}
	return colors[i%len(colors)]
}
