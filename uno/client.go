package uno

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/axie-uno/staking-client/observability"
)

// Endpoint paths consumed on the staking API.
const (
	endpointUserInfo = "userInfo"
	endpointPools    = "pools"
	endpointWallet   = "wallet"
	endpointBalance  = "balance"
	endpointPrices   = "prices"
)

// Client is a typed façade over the staking API. Enum parameters are checked
// against their allow-lists and addresses normalized before any request is
// built; responses decode once at the boundary into the types in this
// package. Requests are independent and never retried or cached.
type Client struct {
	cfg     Config
	base    *url.URL
	httpc   *http.Client
	log     logrus.FieldLogger
	metrics *observability.Metrics
}

// New validates the configuration and prepares a client. A nil logger falls
// back to the logrus standard logger; a nil registerer keeps metrics private.
func New(cfg Config, logger logrus.FieldLogger, reg prometheus.Registerer) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{
		cfg:     cfg,
		base:    base,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		log:     logger,
		metrics: observability.New(reg),
	}, nil
}

// UserInfo fetches the claim state of player within pool.
func (c *Client) UserInfo(ctx context.Context, pool, player string) (*RewardInfo, error) {
	if err := ValidatePool(pool); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("pool", pool)
	q.Set("player", NormalizeAddress(player))

	var info RewardInfo
	if err := c.get(ctx, endpointUserInfo, q, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Pools fetches every pool as seen by player, keyed by pool identifier.
// includeAbi asks the API to attach contract ABIs; it defaults off because
// the payload is large and nothing in this package reads it.
func (c *Client) Pools(ctx context.Context, player string, includeAbi bool) (map[string]PoolInfo, error) {
	q := url.Values{}
	q.Set("player", NormalizeAddress(player))
	if includeAbi {
		q.Set("includeAbi", strconv.FormatBool(includeAbi))
	}

	var pools map[string]PoolInfo
	if err := c.get(ctx, endpointPools, q, &pools); err != nil {
		return nil, err
	}
	return pools, nil
}

// Pool fetches a single pool for player. A pool missing from the response is
// a decode failure: the identifier already passed the allow-list, so its
// absence means the payload lacks an expected field.
func (c *Client) Pool(ctx context.Context, pool, player string) (*PoolInfo, error) {
	if err := ValidatePool(pool); err != nil {
		return nil, err
	}
	pools, err := c.Pools(ctx, player, false)
	if err != nil {
		return nil, err
	}
	info, ok := pools[pool]
	if !ok {
		c.metrics.Errors.WithLabelValues(endpointPools, observability.ErrorKindDecode).Inc()
		return nil, &DecodeError{Endpoint: endpointPools, Err: fmt.Errorf("pool %q missing from response", pool)}
	}
	return &info, nil
}

// Balances fetches the full balance map for player.
func (c *Client) Balances(ctx context.Context, player string) (*WalletInfo, error) {
	q := url.Values{}
	q.Set("player", NormalizeAddress(player))

	var wallet WalletInfo
	if err := c.get(ctx, endpointWallet, q, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Balance fetches player's balance of a single token. Unlike the sheets
// projections this coercion is strict: the balance field is the whole point
// of the call, so a non-numeric value is a decode failure.
func (c *Client) Balance(ctx context.Context, token, player string) (float64, error) {
	if err := ValidateToken(token); err != nil {
		return 0, err
	}
	q := url.Values{}
	q.Set("token", token)
	q.Set("player", NormalizeAddress(player))

	var envelope balanceEnvelope
	if err := c.get(ctx, endpointBalance, q, &envelope); err != nil {
		return 0, err
	}
	balance, err := strconv.ParseFloat(envelope.Balance, 64)
	if err != nil {
		c.metrics.Errors.WithLabelValues(endpointBalance, observability.ErrorKindDecode).Inc()
		return 0, &DecodeError{Endpoint: endpointBalance, Err: fmt.Errorf("balance %q is not numeric", envelope.Balance)}
	}
	return balance, nil
}

// Prices fetches the price of every tracked token in the given currency.
func (c *Client) Prices(ctx context.Context, currency string) (PriceData, error) {
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("currency", currency)

	var prices PriceData
	if err := c.get(ctx, endpointPrices, q, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// Price fetches the unit price of one token in the given currency.
func (c *Client) Price(ctx context.Context, token, currency string) (float64, error) {
	if err := ValidateToken(token); err != nil {
		return 0, err
	}
	prices, err := c.Prices(ctx, currency)
	if err != nil {
		return 0, err
	}
	price, ok := prices[token]
	if !ok {
		c.metrics.Errors.WithLabelValues(endpointPrices, observability.ErrorKindDecode).Inc()
		return 0, &DecodeError{Endpoint: endpointPrices, Err: fmt.Errorf("token %q missing from price data", token)}
	}
	return price, nil
}

// get issues one GET against endpoint with the given query and decodes the
// body into out. Transport failures and non-2xx statuses surface as
// *FetchError, malformed JSON as *DecodeError; neither is retried.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := c.base.JoinPath(endpoint)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	c.metrics.Requests.WithLabelValues(endpoint).Inc()
	start := time.Now()

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.metrics.Errors.WithLabelValues(endpoint, observability.ErrorKindFetch).Inc()
		c.log.WithFields(logrus.Fields{"endpoint": endpoint, "error": err}).Warn("staking API request failed")
		return &FetchError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	elapsed := time.Since(start)
	c.metrics.Duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.Errors.WithLabelValues(endpoint, observability.ErrorKindFetch).Inc()
		return &FetchError{Endpoint: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.Errors.WithLabelValues(endpoint, observability.ErrorKindFetch).Inc()
		c.log.WithFields(logrus.Fields{"endpoint": endpoint, "status": resp.StatusCode}).Warn("staking API returned non-success status")
		return &FetchError{Endpoint: endpoint, Status: resp.StatusCode}
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.metrics.Errors.WithLabelValues(endpoint, observability.ErrorKindDecode).Inc()
		return &DecodeError{Endpoint: endpoint, Err: err}
	}

	c.log.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"status":   resp.StatusCode,
		"duration": elapsed,
	}).Debug("staking API request completed")
	return nil
}
