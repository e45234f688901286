package analysis

// StrategyMessage maps simulated win and tie rates to a one-line
// recommendation for display.
func StrategyMessage(winRate, tieRate float64) string {
	equity := winRate + tieRate/2
	switch {
	case equity >= 0.65:
		return "Strong equity — consider betting or raising for value."
	case equity >= 0.50:
		return "Positive equity — betting or calling is often correct."
	case equity >= 0.35:
		return "Moderate equity — play depends on pot odds and opponent tendencies."
	case equity >= 0.20:
		return "Low equity — consider folding unless pot odds justify a call."
	default:
		return "Weak equity — folding is usually correct unless you have strong implied odds."
	}
}
