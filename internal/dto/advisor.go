package dto

type Action string

const (
	ActionBuy   Action = "buy"
	ActionHold  Action = "hold"
	ActionSell  Action = "sell"
	ActionAvoid Action = "avoid"
)

// AdvisorRecommendation is the personalized action derived from a stock, its
// rating and prediction, and the user profile. Reasoning and RiskWarnings are
// append-only during derivation; Alternatives stays nil unless the risk
// tolerance rule populated it.
type AdvisorRecommendation struct {
	Action       Action   `json:"action"`
	Reasoning    []string `json:"reasoning"`
	RiskWarnings []string `json:"risk_warnings"`
	Alternatives []string `json:"alternatives,omitempty"`
	Confidence   int      `json:"confidence"`
	Disclaimer   string   `json:"disclaimer"`
}

// ChatRequest is the advisor chat payload.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=512"`
}

// ChatResponse carries the generated advisor reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
