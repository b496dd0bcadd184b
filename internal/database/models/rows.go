package models

// NameOption is one entry of a subject listing: display name and id
type NameOption struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// EventCount aggregates the events of one calendar date
type EventCount struct {
	EventDate      Date  `json:"event_date"`
	PositiveEvents int64 `json:"positive_events"`
	NegativeEvents int64 `json:"negative_events"`
}

// NoteEntry is a dated note as shown in reports
type NoteEntry struct {
	NoteDate Date   `json:"note_date"`
	Note     string `json:"note"`
}

// FeatureRecord is the classifier input: event sums for one employee
type FeatureRecord struct {
	PositiveEvents int64 `json:"positive_events"`
	NegativeEvents int64 `json:"negative_events"`
}

// CumulativePoint is one day of a running event total
type CumulativePoint struct {
	Date     Date  `json:"date"`
	Positive int64 `json:"positive"`
	Negative int64 `json:"negative"`
}
