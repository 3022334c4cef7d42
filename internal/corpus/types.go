package corpus

// Entry is a single corpus document. Override files may carry a
// precomputed embedding so the vector store can seed it without an
// embed call; the embedded default corpus leaves that field empty.
type Entry struct {
	Text      string    `json:"text"`
	Zodiac    string    `json:"zodiac"`
	Category  string    `json:"category,omitempty"`
	Embedding []float32 `json:"embedding,omitempty"`
}

// corpusFile is the on-disk shape of a corpus document set.
type corpusFile struct {
	Insights []Entry `json:"insights"`
}
