package uno

import "strings"

// roninPrefix is the chain-specific form wallets hand out; the API only
// accepts the hex convention.
const roninPrefix = "ronin:"

// NormalizeAddress rewrites a leading "ronin:" prefix to "0x". Addresses
// without the prefix, including the empty string, pass through unchanged.
func NormalizeAddress(addr string) string {
	if strings.HasPrefix(addr, roninPrefix) {
		return "0x" + addr[len(roninPrefix):]
	}
	return addr
}
