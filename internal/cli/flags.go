package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	BatchFile    string
	Dictionary   string
	Exact        bool
	LookupOnly   bool
	UseJSON      bool
	CustomPrompt string
	ListModels   bool

	// LLM flags
	Backend     string
	LLMURL      string
	LLMAPIKey   string
	OpenAIModel string
	GeminiModel string
	Temperature float64
	MaxTokens   int

	// Matcher tuning flags
	SumThreshold        int
	DistanceThreshold   int
	AcceptanceThreshold int
	MaxWords            int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		UseJSON:             true,
		Backend:             "hosted",
		LLMURL:              "http://localhost:8000",
		OpenAIModel:         "gpt-4o-mini",
		GeminiModel:         "gemini-2.0-flash",
		SumThreshold:        100,
		DistanceThreshold:   10,
		AcceptanceThreshold: 20,
		MaxWords:            3,
	}
}
