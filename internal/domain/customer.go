package domain

// Customer is a loyalty program member.
type Customer struct {
	ID      int64  `json:"id,string"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Points  int    `json:"points"`
}

// Tier derives the loyalty classification from accumulated points. It is never
// stored.
func (c Customer) Tier() string {
	switch {
	case c.Points >= 300:
		return "VIP"
	case c.Points >= 200:
		return "Gold"
	case c.Points >= 100:
		return "Silver"
	default:
		return "Bronze"
	}
}
