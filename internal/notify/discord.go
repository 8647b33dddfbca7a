// Package notify announces new checkout sessions on a Discord webhook.
package notify

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/northshoreshop/storefront/internal/currency"
	"github.com/northshoreshop/storefront/internal/domain"
	"github.com/northshoreshop/storefront/internal/logger"
)

// webhookExecutor is the part of *discordgo.Session the notifier uses
type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier posts an embed per checkout session to a webhook
type DiscordNotifier struct {
	session   webhookExecutor
	webhookID string
	token     string
	username  string
	formatter *currency.Formatter
}

// NewDiscordNotifier creates a notifier for the given webhook. Webhook calls
// need no bot token, so the session is unauthenticated.
func NewDiscordNotifier(webhookID, token string, formatter *currency.Formatter) (*DiscordNotifier, error) {
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &DiscordNotifier{
		session:   s,
		webhookID: webhookID,
		token:     token,
		username:  DefaultUsername,
		formatter: formatter,
	}, nil
}

// NotifySessionCreated implements checkout.Notifier
func (n *DiscordNotifier) NotifySessionCreated(ctx context.Context, session *domain.CheckoutSession, params domain.CheckoutSessionParams) error {
	embed := buildEmbed(session, params, n.formatter, time.Now())

	_, err := n.session.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Username: n.username,
		Embeds:   []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord webhook: %w", err)
	}

	logger.FromContext(ctx).Debug(LogMsgNotificationSent, "session_id", session.ID)
	return nil
}

func buildEmbed(session *domain.CheckoutSession, params domain.CheckoutSessionParams, formatter *currency.Formatter, now time.Time) *discordgo.MessageEmbed {
	items := make([]string, 0, len(params.LineItems))
	for _, li := range params.LineItems {
		items = append(items, fmt.Sprintf("%d × `%s`", li.Quantity, li.Price))
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: FieldItems, Value: orNone(strings.Join(items, "\n"))},
	}

	if len(params.Metadata) > 0 {
		products := make([]string, 0, len(params.Metadata))
		for productID := range params.Metadata {
			products = append(products, productID)
		}
		slices.Sort(products)

		sizes := make([]string, 0, len(products))
		for _, productID := range products {
			sizes = append(sizes, fmt.Sprintf("`%s`: %s", productID, strings.ToUpper(params.Metadata[productID])))
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: FieldSizes, Value: strings.Join(sizes, "\n")})
	}

	if params.ShippingRate != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: FieldShipping, Value: "`" + params.ShippingRate + "`", Inline: true})
	}

	if session.AmountTotal != nil && formatter != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   FieldTotal,
			Value:  formatter.FormatProviderAmount(*session.AmountTotal, session.Currency),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       EmbedTitle,
		Description: fmt.Sprintf("Session `%s`", session.ID),
		URL:         session.URL,
		Color:       EmbedColor,
		Fields:      fields,
		Timestamp:   now.UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: EmbedFooter,
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
