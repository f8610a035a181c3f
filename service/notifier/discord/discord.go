package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	pricefomatter "github.com/x-xyz/goauction/base/price_fomatter"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

type Config struct {
	BotKey    string `mapstructure:"botKey"`
	ChannelId string `mapstructure:"channelId"`
	// AssetUrl is formatted with contract and token id
	AssetUrl string `mapstructure:"assetUrl"`
	Symbol   string `mapstructure:"symbol"`
}

type sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type notifier struct {
	cfg       Config
	discord   sender
	formatter pricefomatter.PriceFormatter
}

// New returns an observer posting an embed to cfg.ChannelId when an auction
// gets a bid or is settled.
func New(cfg Config, formatter pricefomatter.PriceFormatter) (auction.Observer, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, err
	}
	return &notifier{cfg, discord, formatter}, nil
}

func (n *notifier) Name() string {
	return "discord"
}

func (n *notifier) Notify(c ctx.Ctx, e *auction.Event) error {
	var msg *discordgo.MessageEmbed
	switch e.Kind {
	case auction.EventBidSubmitted:
		msg = n.bidEmbed(e)
	case auction.EventAuctionSettled:
		msg = n.settledEmbed(e)
	default:
		return nil
	}

	if _, err := n.discord.ChannelMessageSendEmbed(n.cfg.ChannelId, msg); err != nil {
		c.WithFields(log.Fields{"err": err, "kind": e.Kind}).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

func (n *notifier) price(a *domain.Amount) string {
	if a == nil {
		return "-"
	}
	return fmt.Sprintf("%s %s", n.formatter.Format(*a), n.cfg.Symbol)
}

func (n *notifier) description(e *auction.Event) string {
	if n.cfg.AssetUrl == "" {
		return fmt.Sprintf("%s #%s", e.Contract, e.TokenId)
	}
	return fmt.Sprintf(n.cfg.AssetUrl, e.Contract, e.TokenId)
}

func (n *notifier) bidEmbed(e *auction.Event) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "New bid!",
		Description: n.description(e),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Bidder", Value: string(e.Bidder)},
			{Name: "Price", Value: n.price(e.Amount)},
			{Name: "Ends", Value: fmt.Sprintf("<t:%d:R>", e.EndTime)},
		},
	}
}

func (n *notifier) settledEmbed(e *auction.Event) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Item sold!",
		Description: n.description(e),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Seller", Value: string(e.Seller)},
			{Name: "Buyer", Value: string(e.Winner)},
			{Name: "Price", Value: n.price(e.Amount)},
			{Name: "Royalty", Value: fmt.Sprintf("%s to %s", n.price(e.Royalty), e.Author)},
		},
	}
}
