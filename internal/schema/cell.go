package schema

import "strings"

// CellKind tells a renderer how to draw a Cell.
type CellKind string

const (
	// KindText is plain text.
	KindText CellKind = "text"
	// KindLink is a title that links to URL and may be struck through.
	KindLink CellKind = "link"
	// KindScore is a review score on the rank scale.
	KindScore CellKind = "score"
	// KindClamped is wrapped text limited to MaxLines lines.
	KindClamped CellKind = "clamped"
	// KindBadges is a list of pill badges.
	KindBadges CellKind = "badges"
	// KindExpandable is a link title with a body revealed on expand.
	KindExpandable CellKind = "expandable"
)

// Detail is one labelled value inside an expandable cell body.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Cell is a presentation-free description of one table cell.
type Cell struct {
	Kind CellKind `json:"kind"`

	// Text is the visible label for every kind except badges.
	Text string `json:"text,omitempty"`

	// URL is the link target for link and expandable cells.
	URL string `json:"url,omitempty"`

	// Strike marks titles of games that are no longer available.
	Strike bool `json:"strike,omitempty"`

	// Badges holds the pills of a badges cell, or the trailing tags of an
	// expandable body.
	Badges []string `json:"badges,omitempty"`

	// Details are the labelled rows revealed when an expandable cell opens.
	Details []Detail `json:"details,omitempty"`

	// Body is the paragraph revealed after Details.
	Body string `json:"body,omitempty"`

	// MaxLines limits clamped cells. Zero means unlimited.
	MaxLines int `json:"max_lines,omitempty"`
}

// Plain flattens the cell into a single line of text.
func (c Cell) Plain() string {
	switch c.Kind {
	case KindBadges:
		return strings.Join(c.Badges, ", ")
	default:
		return c.Text
	}
}
