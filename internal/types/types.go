package types

// Config holds the validated parameters of one search run.
type Config struct {
	Query string
	Path  string
}

// Document is the full text content of the file being searched.
type Document struct {
	Path string
	Text string
}

// Match represents a line of a Document that contains the query.
// Text is a substring of Document.Text, not a copy.
type Match struct {
	Line int    `json:"line"` // 1-based
	Text string `json:"text"`
}
