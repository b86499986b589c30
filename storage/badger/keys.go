package badger

// Key prefixes for the persisted slots. Stats entries are keyed per product
// code; the recent-searches list and the device identifier each live under a
// single fixed key.
const (
	statsPrefix       = "pbstats"
	recentSearchesKey = "pbrecent"
	deviceIDKey       = "pbdevice"
)

// makeStatsKey generates the key for a product code's stats entry.
func makeStatsKey(code string) []byte {
	return []byte(statsPrefix + ":" + code)
}

// statsKeyCode extracts the product code back out of a stats key.
func statsKeyCode(key []byte) string {
	return string(key[len(statsPrefix)+1:])
}
