package uno

// The API serializes every monetary quantity as a decimal string; those fields
// stay strings here and are coerced by the sheets projections.

// RewardInfo describes a player's claim state within one pool.
type RewardInfo struct {
	RewardsCredited       string `json:"rewards_credited"`
	RewardsDebited        string `json:"rewards_debited"`
	SecondsSinceLastClaim int64  `json:"seconds_since_last_claim"`
	SecondsUntilNextClaim int64  `json:"seconds_until_next_claim"`
	NextClaimTimestamp    int64  `json:"next_claim_timestamp"`
	LastClaimTimestamp    int64  `json:"last_claim_timestamp"`
}

// TokenInfo carries the on-chain metadata of a pool's reward or staking token.
type TokenInfo struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// PoolInfo describes one staking pool as seen by a given player.
type PoolInfo struct {
	PendingReward        string    `json:"pending_reward"`
	Stake                string    `json:"stake"`
	TotalStake           string    `json:"total_stake"`
	TotalDailyReward     string    `json:"total_daily_reward"`
	EstimatedDailyReward string    `json:"estimated_daily_reward"`
	APR                  string    `json:"apr"`
	RewardToken          TokenInfo `json:"reward_token"`
	StakingToken         TokenInfo `json:"staking_token"`
}

// PriceData maps a token symbol to its price in the currency the request
// asked for.
type PriceData map[string]float64

// WalletInfo is the full balance map for one player.
type WalletInfo struct {
	Balances map[string]string `json:"balances"`
}

// balanceEnvelope is the single-token balance payload.
type balanceEnvelope struct {
	Balance string `json:"balance"`
}
