// Package sheets derives spreadsheet-friendly scalars from staking API
// responses: floats from decimal-string fields, dates from unix timestamps,
// clock strings from second counts, and the handful of derived pool
// economics the original sheet formulas computed per cell.
package sheets

import (
	"context"
	"time"

	"github.com/axie-uno/staking-client/uno"
)

// DefaultCurrency is applied wherever a currency argument is left empty.
const DefaultCurrency = "usd"

// zeroAddress stands in for the player on simulation fetches, where live
// totals are needed but no real stake should be read.
const zeroAddress = "0x0000000000000000000000000000000000000000"

// Funcs exposes the spreadsheet-function surface: every method takes
// primitive arguments and returns a single scalar, mirroring how the
// original custom functions were called from cells.
type Funcs struct {
	client *uno.Client
}

// NewFuncs wraps a client with the spreadsheet-function surface.
func NewFuncs(client *uno.Client) *Funcs {
	return &Funcs{client: client}
}

// PendingRewards returns player's unclaimed reward in pool.
func (f *Funcs) PendingRewards(ctx context.Context, pool, player string) (float64, error) {
	info, err := f.client.Pool(ctx, pool, player)
	if err != nil {
		return 0, err
	}
	return ParseAmount(info.PendingReward), nil
}

// MyStake returns player's current stake in pool.
func (f *Funcs) MyStake(ctx context.Context, pool, player string) (float64, error) {
	info, err := f.client.Pool(ctx, pool, player)
	if err != nil {
		return 0, err
	}
	return ParseAmount(info.Stake), nil
}

// TotalStaked returns the pool-wide stake total.
func (f *Funcs) TotalStaked(ctx context.Context, pool, player string) (float64, error) {
	info, err := f.client.Pool(ctx, pool, player)
	if err != nil {
		return 0, err
	}
	return ParseAmount(info.TotalStake), nil
}

// TotalDailyRewards returns the reward the pool pays out per day in total.
func (f *Funcs) TotalDailyRewards(ctx context.Context, pool, player string) (float64, error) {
	info, err := f.client.Pool(ctx, pool, player)
	if err != nil {
		return 0, err
	}
	return ParseAmount(info.TotalDailyReward), nil
}

// PoolAPR returns the pool's annualized reward rate.
func (f *Funcs) PoolAPR(ctx context.Context, pool, player string) (float64, error) {
	info, err := f.client.Pool(ctx, pool, player)
	if err != nil {
		return 0, err
	}
	return ParseAmount(info.APR), nil
}

// RewardsCredited returns the lifetime reward total credited to player.
func (f *Funcs) RewardsCredited(ctx context.Context, pool, player string) (float64, error) {
	info, err := f.client.UserInfo(ctx, pool, player)
	if err != nil {
		return 0, err
	}
	return ParseAmount(info.RewardsCredited), nil
}

// RewardsDebited returns the lifetime reward total already claimed out.
func (f *Funcs) RewardsDebited(ctx context.Context, pool, player string) (float64, error) {
	info, err := f.client.UserInfo(ctx, pool, player)
	if err != nil {
		return 0, err
	}
	return ParseAmount(info.RewardsDebited), nil
}

// TimeUntilNextClaim renders the wait before player may claim again as a
// clock string, e.g. "01:05".
func (f *Funcs) TimeUntilNextClaim(ctx context.Context, pool, player string) (string, error) {
	info, err := f.client.UserInfo(ctx, pool, player)
	if err != nil {
		return "", err
	}
	return FormatSeconds(info.SecondsUntilNextClaim), nil
}

// NextClaimDate returns the moment player's next claim unlocks.
func (f *Funcs) NextClaimDate(ctx context.Context, pool, player string) (time.Time, error) {
	info, err := f.client.UserInfo(ctx, pool, player)
	if err != nil {
		return time.Time{}, err
	}
	return UnixTime(info.NextClaimTimestamp), nil
}

// LastClaimDate returns the moment player last claimed.
func (f *Funcs) LastClaimDate(ctx context.Context, pool, player string) (time.Time, error) {
	info, err := f.client.UserInfo(ctx, pool, player)
	if err != nil {
		return time.Time{}, err
	}
	return UnixTime(info.LastClaimTimestamp), nil
}

// TokenPrice returns one token's unit price. An empty currency defaults to
// DefaultCurrency.
func (f *Funcs) TokenPrice(ctx context.Context, token, currency string) (float64, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	return f.client.Price(ctx, token, currency)
}

// TokenBalance returns player's balance of one token.
func (f *Funcs) TokenBalance(ctx context.Context, token, player string) (float64, error) {
	return f.client.Balance(ctx, token, player)
}

// TokenValueIn prices qty units of token in the given currency (empty
// defaults to DefaultCurrency).
func (f *Funcs) TokenValueIn(ctx context.Context, token string, qty float64, currency string) (float64, error) {
	price, err := f.TokenPrice(ctx, token, currency)
	if err != nil {
		return 0, err
	}
	return TokenValue(qty, price), nil
}

// AXSUSDValue prices qty AXS in US dollars, the single most common cell in
// the original sheets.
func (f *Funcs) AXSUSDValue(ctx context.Context, qty float64) (float64, error) {
	return f.TokenValueIn(ctx, "AXS", qty, DefaultCurrency)
}

// EstimateDailyRewards projects player's daily reward in pool from their
// live stake share.
func (f *Funcs) EstimateDailyRewards(ctx context.Context, pool, player string) (float64, error) {
	info, err := f.client.Pool(ctx, pool, player)
	if err != nil {
		return 0, err
	}
	return ProRataDailyReward(
		ParseAmount(info.Stake),
		ParseAmount(info.TotalStake),
		ParseAmount(info.TotalDailyReward),
	), nil
}

// SimulateDailyRewards projects the daily reward a hypothetical stake would
// earn in pool against the live totals. The pools fetch uses the zero
// address so no real position is read.
func (f *Funcs) SimulateDailyRewards(ctx context.Context, pool string, stake float64) (float64, error) {
	info, err := f.client.Pool(ctx, pool, zeroAddress)
	if err != nil {
		return 0, err
	}
	return ProRataDailyReward(
		stake,
		ParseAmount(info.TotalStake),
		ParseAmount(info.TotalDailyReward),
	), nil
}
