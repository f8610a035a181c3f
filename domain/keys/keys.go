package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxAuctionLock is used for prefixing the per auction write lock
	PfxAuctionLock = "auctionLock"
	// PfxAuthorOf is used for prefixing cached author of record lookups
	PfxAuthorOf = "authorOf"
	// PfxConfigLock is the write lock of the engine configuration
	PfxConfigLock = "auctionConfigLock"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// AuctionLockKey is the lock key of the auction on (contract, tokenId).
// Contract addresses are compared case-insensitively.
func AuctionLockKey(contract, tokenId string) string {
	return RedisKey(PfxAuctionLock, strings.ToLower(contract), tokenId)
}

// ConfigLockKey is the lock key of the engine configuration.
func ConfigLockKey() string {
	return RedisKey(PfxConfigLock)
}

// GetPrefix extracts the prefix of a key for metric tags, at most two
// components deep.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join(s[:2], ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
