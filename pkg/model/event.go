package model

// Club represents a student club that owns events.
type Club struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	FBLink      string `json:"fbLink,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Button is a call-to-action link attached to an event.
type Button struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Event represents a published event as returned by the API.
//
// Date is kept as the raw wire string; parsing happens where ordering
// matters (see the filter package) so that a malformed date from the
// API never fails a list decode.
type Event struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Buttons     []Button `json:"buttons,omitempty"`
	Club        Club     `json:"club"`
	CreatedBy   User     `json:"createdBy,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}
