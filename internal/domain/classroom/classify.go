package classroom

import "strings"

// DefaultSpeechMarkers flag an action text as spoken dialogue.
var DefaultSpeechMarkers = []string{"dice", "habla", "cuenta", "says", "talks", "tells"}

type Classifier struct {
	Markers []string
}

func (c Classifier) Classify(action string) EventKind {
	markers := c.Markers
	if len(markers) == 0 {
		markers = DefaultSpeechMarkers
	}
	lower := strings.ToLower(action)
	for _, m := range markers {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" && strings.Contains(lower, m) {
			return EventDialogue
		}
	}
	return EventAction
}
