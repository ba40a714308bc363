package types

import "github.com/axie-uno/staking-client/uno"

// HealthResponse represents the shape of /healthz responses.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// ErrorResponse is a generic API error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PricesResponse carries every tracked token's price in one currency.
type PricesResponse struct {
	Currency string        `json:"currency"`
	Prices   uno.PriceData `json:"prices"`
}

// PoolsResponse carries the pool map as seen by one player.
type PoolsResponse struct {
	Player string                  `json:"player"`
	Pools  map[string]uno.PoolInfo `json:"pools"`
}

// UserInfoResponse is the upstream claim state plus the derived clock string
// the sheet cells display.
type UserInfoResponse struct {
	uno.RewardInfo
	TimeUntilNextClaim string `json:"time_until_next_claim"`
}

// BalanceResponse is a single-token balance lookup result.
type BalanceResponse struct {
	Token   string  `json:"token"`
	Player  string  `json:"player"`
	Balance float64 `json:"balance"`
}

// EstimateResponse is a pro-rata daily reward projection. Stake is echoed
// only in simulation mode, Player only in live mode.
type EstimateResponse struct {
	Pool        string   `json:"pool"`
	Player      string   `json:"player,omitempty"`
	Stake       *float64 `json:"stake,omitempty"`
	DailyReward float64  `json:"daily_reward"`
}
