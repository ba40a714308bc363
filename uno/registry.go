package uno

// Allow-lists for the enum-like request parameters. Declaration order is the
// reporting order used in validation errors; the slices are never mutated
// after package initialization.
var (
	// Pools enumerates the staking programs the API knows about.
	Pools = []string{"AXS", "AXS-WETH", "SLP-WETH", "RON-WETH"}

	// Tokens enumerates the assets tracked for balance and price lookups.
	Tokens = []string{"AXS", "SLP", "RON", "WETH", "AXS-WETH", "SLP-WETH", "RON-WETH"}

	// Currencies enumerates the quote currencies accepted by the price
	// endpoint. The API expects them lowercase.
	Currencies = []string{"usd", "eur", "gbp", "jpy", "php", "vnd", "btc", "eth"}
)

var (
	poolSet     = toSet(Pools)
	tokenSet    = toSet(Tokens)
	currencySet = toSet(Currencies)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// ValidatePool rejects pool identifiers outside the allow-list.
func ValidatePool(pool string) error {
	if _, ok := poolSet[pool]; !ok {
		return &BadEnumError{Kind: "pool", Value: pool, Valid: Pools}
	}
	return nil
}

// ValidateToken rejects token identifiers outside the allow-list.
func ValidateToken(token string) error {
	if _, ok := tokenSet[token]; !ok {
		return &BadEnumError{Kind: "token", Value: token, Valid: Tokens}
	}
	return nil
}

// ValidateCurrency rejects currency codes outside the allow-list.
func ValidateCurrency(currency string) error {
	if _, ok := currencySet[currency]; !ok {
		return &BadEnumError{Kind: "currency", Value: currency, Valid: Currencies}
	}
	return nil
}
