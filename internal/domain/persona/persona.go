package persona

// Unassigned is the bucket for cluster codes outside the known set.
// Rows with unknown codes stay visible instead of silently dropping out of
// every persona-keyed view.
const Unassigned = "Unassigned"

// clusterNames maps cluster codes from the segmentation analysis to display
// names. The codes are fixed upstream; the names come from the analysis.
var clusterNames = map[string]string{
	"3": "High-Value Champions 🏆",
	"1": "Loyal & Regular 🌟",
	"0": "New & Promising 🌱",
	"2": "Lapsed Customers 😴",
}

// displayOrder fixes how personas are listed in filters and legends.
var displayOrder = []string{"3", "1", "0", "2"}

// chartColors assigns one stable color per persona, indexed by display order.
// Unassigned always gets the trailing grey.
var chartColors = []string{"#4F46E5", "#10B981", "#F59E0B", "#EF4444"}

const unassignedColor = "#9CA3AF"

// Label returns the display name for a cluster code.
// Unknown codes map to Unassigned.
func Label(cluster string) string {
	if name, ok := clusterNames[cluster]; ok {
		return name
	}
	return Unassigned
}

// Known reports whether name is one of the fixed persona names.
func Known(name string) bool {
	for _, code := range displayOrder {
		if clusterNames[code] == name {
			return true
		}
	}
	return false
}

// All returns the fixed persona names in display order.
// Unassigned is excluded; it only surfaces when present in the data.
func All() []string {
	names := make([]string, 0, len(displayOrder))
	for _, code := range displayOrder {
		names = append(names, clusterNames[code])
	}
	return names
}

// Color returns the chart color for a persona name.
func Color(name string) string {
	for i, code := range displayOrder {
		if clusterNames[code] == name {
			return chartColors[i]
		}
	}
	return unassignedColor
}
