package domain

// Document is a core entity holding the raw text acquired for one URL.
type Document struct {
	URLID string
	URL   string
	Text  string
	// Missing marks documents the acquisition step produced no text for.
	Missing bool
}

// MetricRecord carries the thirteen computed metrics for one document.
// All fields are defined even for degenerate input; degenerate ratios are 0.
type MetricRecord struct {
	URLID                  string
	URL                    string
	PositiveScore          int
	NegativeScore          int
	PolarityScore          float64
	SubjectivityScore      float64
	AvgSentenceLength      float64
	PercentageComplexWords float64
	FogIndex               float64
	AvgWordsPerSentence    float64
	ComplexWordCount       int
	WordCount              int
	SyllablesPerWord       float64
	PersonalPronouns       int
	AvgWordLength          float64
}

// Failure records a document that could not be analyzed at all.
type Failure struct {
	URLID  string
	URL    string
	Reason string
}
