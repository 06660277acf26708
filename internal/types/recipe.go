package types

// Recipe is the flat, read-only view of a catalog recipe. The relational
// store keeps ingredients, steps and tags in separate tables; they are
// resolved into these slices when the catalog is loaded.
type Recipe struct {
	ID          uint     `json:"id,omitempty"`
	Name        string   `json:"name"`
	Time        string   `json:"time"`
	Type        string   `json:"type"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tags        []string `json:"tags"`
}

// Guidance is the structured cooking help returned by the language model.
type Guidance struct {
	Instructions       []string `json:"instructions"`
	Substitutions      []string `json:"substitutions"`
	Tips               []string `json:"tips"`
	CulturalContext    string   `json:"cultural_context"`
	ServingSuggestions []string `json:"serving_suggestions"`
}

// Normalize replaces nil slices with empty ones so the JSON payload always
// carries arrays.
func (g *Guidance) Normalize() {
	if g.Instructions == nil {
		g.Instructions = []string{}
	}
	if g.Substitutions == nil {
		g.Substitutions = []string{}
	}
	if g.Tips == nil {
		g.Tips = []string{}
	}
	if g.ServingSuggestions == nil {
		g.ServingSuggestions = []string{}
	}
}
