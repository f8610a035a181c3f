package domain

import "github.com/x-xyz/goauction/base/ctx"

type Table string

const (
	TableAuctions      Table = "auctions"
	TableAuctionEvents Table = "auction_events"
	TableAuctionConfig Table = "auction_config"
)

// Transactor runs fn as one unit of work: every repository write made through
// the ctx passed to fn is committed together or not at all.
type Transactor interface {
	RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error
}
