package model

// FieldRecord is one raw (FieldName, Content) pair produced by the upstream
// raw-format parsers. Content is already-flattened free text; joined markup
// lines are separated by " | ".
type FieldRecord struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Year    int    `json:"year"`
}

// NameStats holds the aggregate usage statistics for one distinct field-name
// spelling, computed once per batch over the full input collection.
type NameStats struct {
	FirstYear int `json:"first_year"`
	LastYear  int `json:"last_year"`
	UseCount  int `json:"use_count"`
}
