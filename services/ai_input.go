package services

// AIInput is the exact JSON the AI server expects.
type AIInput struct {
	User AIUser `json:"user"`
}

type AIUser struct {
	Category string      `json:"category,omitempty"`
	DietInfo *DietInfo   `json:"dietInfo"`
	Campus   []string    `json:"campus"`
	Meals    []string    `json:"meals"`
	Price    *PriceRange `json:"price"`
	Prompt   string      `json:"prompt"`
}

// BuildAIInput maps a validated request into the AI server's input
// shape. Total and pure: absent dietInfo/price serialize as null,
// absent campus as [], absent prompt as "".
func BuildAIInput(req *RecommendRequest) AIInput {
	campus := req.Campus
	if campus == nil {
		campus = []string{}
	}
	return AIInput{
		User: AIUser{
			Category: req.Category,
			DietInfo: req.DietInfo,
			Campus:   campus,
			Meals:    req.Meals,
			Price:    req.Price,
			Prompt:   req.Prompt,
		},
	}
}
