package sheets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axie-uno/staking-client/uno"
)

const testPlayer = "0xa1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0"

// stubAPI answers the endpoints the Funcs surface touches with a canned,
// internally consistent payload set.
func stubAPI(t *testing.T) *Funcs {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/prices", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "usd", r.URL.Query().Get("currency"))
		w.Write([]byte(`{"AXS": 5.0, "SLP": 0.002, "RON": 0.5}`))
	})
	mux.HandleFunc("/pools", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"AXS": {
				"pending_reward": "1.25",
				"stake": "50",
				"total_stake": "200",
				"total_daily_reward": "40",
				"estimated_daily_reward": "10",
				"apr": "85.3",
				"reward_token": {"address": "0xreward", "name": "Axie Infinity Shard", "symbol": "AXS"},
				"staking_token": {"address": "0xstake", "name": "Axie Infinity Shard", "symbol": "AXS"}
			}
		}`))
	})
	mux.HandleFunc("/userInfo", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"rewards_credited": "12.5",
			"rewards_debited": "2.5",
			"seconds_since_last_claim": 100,
			"seconds_until_next_claim": 65,
			"next_claim_timestamp": 1700000065,
			"last_claim_timestamp": 1700000000
		}`))
	})
	mux.HandleFunc("/balance", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"balance": "42.75"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client, err := uno.New(uno.Config{BaseURL: srv.URL, Timeout: time.Second}, logger, nil)
	require.NoError(t, err)
	return NewFuncs(client)
}

func TestAXSUSDValue(t *testing.T) {
	funcs := stubAPI(t)

	value, err := funcs.AXSUSDValue(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 15.0, value)
}

func TestTokenPriceDefaultsCurrency(t *testing.T) {
	funcs := stubAPI(t)

	// Empty currency must fall back to usd; the stub asserts the query param.
	price, err := funcs.TokenPrice(context.Background(), "SLP", "")
	require.NoError(t, err)
	assert.Equal(t, 0.002, price)
}

func TestPoolScalars(t *testing.T) {
	funcs := stubAPI(t)
	ctx := context.Background()

	pending, err := funcs.PendingRewards(ctx, "AXS", testPlayer)
	require.NoError(t, err)
	assert.Equal(t, 1.25, pending)

	stake, err := funcs.MyStake(ctx, "AXS", testPlayer)
	require.NoError(t, err)
	assert.Equal(t, 50.0, stake)

	total, err := funcs.TotalStaked(ctx, "AXS", testPlayer)
	require.NoError(t, err)
	assert.Equal(t, 200.0, total)

	apr, err := funcs.PoolAPR(ctx, "AXS", testPlayer)
	require.NoError(t, err)
	assert.Equal(t, 85.3, apr)
}

func TestClaimProjections(t *testing.T) {
	funcs := stubAPI(t)
	ctx := context.Background()

	clock, err := funcs.TimeUntilNextClaim(ctx, "AXS", testPlayer)
	require.NoError(t, err)
	assert.Equal(t, "01:05", clock)

	next, err := funcs.NextClaimDate(ctx, "AXS", testPlayer)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.November, 14, 22, 14, 25, 0, time.UTC), next)

	last, err := funcs.LastClaimDate(ctx, "AXS", testPlayer)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC), last)

	credited, err := funcs.RewardsCredited(ctx, "AXS", testPlayer)
	require.NoError(t, err)
	assert.Equal(t, 12.5, credited)
}

func TestEstimateDailyRewards(t *testing.T) {
	funcs := stubAPI(t)

	daily, err := funcs.EstimateDailyRewards(context.Background(), "AXS", testPlayer)
	require.NoError(t, err)
	assert.Equal(t, 10.0, daily)
}

func TestSimulateDailyRewardsUsesZeroAddress(t *testing.T) {
	var sawPlayer string
	mux := http.NewServeMux()
	mux.HandleFunc("/pools", func(w http.ResponseWriter, r *http.Request) {
		sawPlayer = r.URL.Query().Get("player")
		w.Write([]byte(`{
			"AXS": {"stake": "0", "total_stake": "200", "total_daily_reward": "40",
				"pending_reward": "0", "estimated_daily_reward": "0", "apr": "0",
				"reward_token": {}, "staking_token": {}}
		}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	client, err := uno.New(uno.Config{BaseURL: srv.URL, Timeout: time.Second}, logger, nil)
	require.NoError(t, err)
	funcs := NewFuncs(client)

	daily, err := funcs.SimulateDailyRewards(context.Background(), "AXS", 50)
	require.NoError(t, err)
	assert.Equal(t, 10.0, daily)
	assert.Equal(t, "0x0000000000000000000000000000000000000000", sawPlayer)
}

func TestFuncsPropagateEnumErrors(t *testing.T) {
	funcs := stubAPI(t)

	var enumErr *uno.BadEnumError
	_, err := funcs.PendingRewards(context.Background(), "DOGE", testPlayer)
	require.ErrorAs(t, err, &enumErr)

	_, err = funcs.TokenPrice(context.Background(), "DOGE", "usd")
	require.ErrorAs(t, err, &enumErr)
}
