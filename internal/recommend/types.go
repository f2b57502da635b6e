package recommend

// CareerSuggestion is one suggested career path.
type CareerSuggestion struct {
	Title   string `json:"title"`
	Reason  string `json:"reason"`
	Outlook string `json:"outlook,omitempty"`
}

// CareerSet is an ordered list of career suggestions.
type CareerSet []CareerSuggestion

// CollegeSuggestion is one suggested college and program.
type CollegeSuggestion struct {
	Name    string `json:"name"`
	Program string `json:"program"`
	Reason  string `json:"reason"`
}

// CollegeSet is an ordered list of college suggestions.
type CollegeSet []CollegeSuggestion

// RoadmapStep is one ordered step toward the suggested career.
type RoadmapStep struct {
	Order       int    `json:"order"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe,omitempty"`
}

// Roadmap is the ordered sequence of steps.
type Roadmap []RoadmapStep
