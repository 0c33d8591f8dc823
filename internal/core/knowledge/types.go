package knowledge

// KnowledgeBase holds the structured business facts fed into prompt assembly.
// It lives as a JSONB column on the business record; field names match the
// stored JSON shape.
type KnowledgeBase struct {
	General        *General        `json:"general,omitempty"`
	Team           []TeamMember    `json:"team,omitempty"`
	GeoKeywords    []GeoKeyword    `json:"geoKeywords,omitempty"`
	MenuHighlights []MenuHighlight `json:"menuHighlights,omitempty"`
	Playbook       []PlaybookRule  `json:"playbook,omitempty"`
}

type General struct {
	About         string   `json:"about,omitempty"`
	AlwaysMention string   `json:"alwaysMention,omitempty"`
	Hours         []string `json:"hours,omitempty"`
	Services      []string `json:"services,omitempty"`
	Policies      []string `json:"policies,omitempty"`
	Promotions    []string `json:"promotions,omitempty"`
	Legacy        string   `json:"legacy,omitempty"`
}

// TeamMember is a staff entry. Only IsPublic entries may appear in prompts.
type TeamMember struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	Context           string   `json:"context,omitempty"` // legacy freeform field
	YearsOfExperience int      `json:"yearsOfExperience,omitempty"`
	Certifications    []string `json:"certifications,omitempty"`
	Specialties       []string `json:"specialties,omitempty"`
	IsPublic          bool     `json:"isPublic"`
}

// GeoKeyword is a local-SEO phrase to weave into replies, weighted by priority.
type GeoKeyword struct {
	ID           string `json:"id"`
	Keyword      string `json:"keyword"`
	Priority     string `json:"priority"` // high | medium | low
	UsageExample string `json:"usageExample,omitempty"`
}

type MenuHighlight struct {
	ID            string `json:"id"`
	Item          string `json:"item"`
	Description   string `json:"description,omitempty"`
	SentimentHook string `json:"sentimentHook,omitempty"`
}

// PlaybookRule is an operator-defined trigger→response mapping. Playbook rules
// override all other knowledge directives.
type PlaybookRule struct {
	Trigger  string `json:"trigger"`
	Response string `json:"response"`
}
