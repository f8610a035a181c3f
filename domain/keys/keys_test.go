package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuctionLockKey(t *testing.T) {
	assert.Equal(t, "auctionLock:0xabcd:12", AuctionLockKey("0xABcd", "12"))
	assert.Equal(t, AuctionLockKey("0xabcd", "12"), AuctionLockKey("0xABCD", "12"))
}

func TestGetPrefix(t *testing.T) {
	tests := []struct {
		key string
		exp string
	}{
		{"single", ""},
		{"a:b", "a"},
		{"auctionLock:0xabcd:12", "auctionLock:0xabcd"},
		{"a:b:c:d", "a:b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.exp, GetPrefix(tt.key), tt.key)
	}
}

func TestConfigLockKey(t *testing.T) {
	assert.Equal(t, "auctionConfigLock", ConfigLockKey())
}
