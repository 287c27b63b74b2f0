package tips

import (
	"slices"
	"strings"
)

const (
	Title    = "Tips"
	Subtitle = "Small guidance for a calmer session."
	Footer   = "There's no \"perfect\" meditation. Just show up and breathe."
)

// Tip is one piece of practice guidance.
type Tip struct {
	Title string
	Body  string
	Tags  []string
}

var all = []Tip{
	{
		Title: "Start small",
		Body:  "Begin with 3-5 minutes. Consistency matters more than length.",
		Tags:  []string{"beginner", "habit"},
	},
	{
		Title: "Anchor on the breath",
		Body:  "When your mind wanders, gently return to the sensation of breathing.",
		Tags:  []string{"breath", "focus"},
	},
	{
		Title: "No need to stop thoughts",
		Body:  "Thoughts are normal. Notice them, label them, and let them pass.",
		Tags:  []string{"mind", "acceptance"},
	},
	{
		Title: "Relax the face and shoulders",
		Body:  "Softening tension makes it easier to stay present.",
		Tags:  []string{"body", "relaxation"},
	},
	{
		Title: "Use the bell as a reset",
		Body:  "Each bell is a cue to return. No judgment, just reset.",
		Tags:  []string{"bell", "practice"},
	},
	{
		Title: "Try open awareness",
		Body:  "Instead of focusing on one thing, notice sounds, body, and thoughts as they come.",
		Tags:  []string{"awareness"},
	},
}

// All returns every tip in display order.
func All() []Tip {
	out := make([]Tip, len(all))
	for i, tip := range all {
		tip.Tags = slices.Clone(tip.Tags)
		out[i] = tip
	}
	return out
}

// WithTag returns tips carrying tag, compared case-insensitively. An empty tag
// matches everything.
func WithTag(tag string) []Tip {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return All()
	}
	var out []Tip
	for _, tip := range All() {
		if slices.Contains(tip.Tags, tag) {
			out = append(out, tip)
		}
	}
	return out
}

// Tags lists the distinct tags in sorted order.
func Tags() []string {
	var tags []string
	for _, tip := range all {
		for _, tag := range tip.Tags {
			if !slices.Contains(tags, tag) {
				tags = append(tags, tag)
			}
		}
	}
	slices.Sort(tags)
	return tags
}
