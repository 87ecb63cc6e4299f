package dashboard

import "github.com/jwulff/callboard/internal/api"

// Filter selects which calls the table shows.
type Filter string

const (
	FilterAll          Filter = "All"
	FilterEmergency    Filter = Filter(api.UrgencyEmergency)
	FilterUrgent       Filter = Filter(api.UrgencyUrgent)
	FilterNonEmergency Filter = Filter(api.UrgencyNonEmergency)
)

// Filters lists the selectable filters in menu order.
var Filters = []Filter{FilterAll, FilterEmergency, FilterUrgent, FilterNonEmergency}

// Next returns the filter after f in menu order, wrapping around.
func (f Filter) Next() Filter {
	for i, v := range Filters {
		if v == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// FilterCalls projects calls through f. FilterAll returns calls as is;
// any other filter keeps classified calls with a matching urgency.
func FilterCalls(calls []api.Call, f Filter) []api.Call {
	if f == FilterAll {
		return calls
	}
	var out []api.Call
	for _, c := range calls {
		if c.Classification != nil && Filter(c.Classification.Urgency) == f {
			out = append(out, c)
		}
	}
	return out
}

// Color names the accent used for an urgency.
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorGreen  Color = "green"
)

// UrgencyColor maps a classification to its accent. Unclassified calls and
// anything that is not Emergency or Urgent read as green.
func UrgencyColor(c *api.Classification) Color {
	if c == nil {
		return ColorGreen
	}
	switch c.Urgency {
	case api.UrgencyEmergency:
		return ColorRed
	case api.UrgencyUrgent:
		return ColorOrange
	default:
		return ColorGreen
	}
}
