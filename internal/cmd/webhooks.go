package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/validation"
)

var webhookColumns = columns[api.Webhook]{
	headers: []string{"ID", "NAME", "STATUS", "TOPIC", "DELIVERY URL"},
	row: func(w api.Webhook) []string {
		return []string{strconv.Itoa(w.ID), str(w.Name), str(w.Status), str(w.Topic), str(w.DeliveryURL)}
	},
}

var webhooks = resource[api.Webhook]{
	singular: "webhook",
	plural:   "webhooks",
	cols:     webhookColumns,
	title:    func(w *api.Webhook) string { return str(w.Name) },
	id:       func(w *api.Webhook) any { return w.ID },
	get: func(ctx context.Context, c *api.Client, _ []int, id int) (*api.Webhook, error) {
		return c.Webhooks().Get(ctx, id)
	},
	create: func(ctx context.Context, c *api.Client, _ []int, v *api.Webhook) (*api.Webhook, error) {
		return c.Webhooks().Create(ctx, v)
	},
	update: func(ctx context.Context, c *api.Client, _ []int, id int, v *api.Webhook) (*api.Webhook, error) {
		return c.Webhooks().Update(ctx, id, v)
	},
	remove: func(ctx context.Context, c *api.Client, _ []int, id int, force bool) (any, error) {
		return c.Webhooks().Delete(ctx, id, force)
	},
	canTrash: true,
	fields:   func() mutation[api.Webhook] { return &webhookFields{} },
	example: `  woo webhooks create --name "Order updated" --topic order.updated --delivery-url https://example.com/hooks/orders
  woo webhooks update 142 --status paused`,
}

func newWebhooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook", "wh"},
		Short:   "Manage webhooks",
	}
	cmd.AddCommand(newWebhooksListCmd())
	cmd.AddCommand(webhooks.getCmd())
	cmd.AddCommand(webhooks.createCmd())
	cmd.AddCommand(webhooks.updateCmd())
	cmd.AddCommand(webhooks.deleteCmd())
	return cmd
}

func newWebhooksListCmd() *cobra.Command {
	var (
		lf     listFlags
		status string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List webhooks",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			base, err := lf.params()
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			page, err := client.Webhooks().List(cmdContext(cmd), api.WebhookListParams{ListParams: base, Status: status})
			if err != nil {
				return err
			}
			return printPage(cmd, page, webhookColumns, "webhooks")
		}),
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&status, "status", "", "Filter by status: all|active|paused|disabled")
	return cmd
}

type webhookFields struct {
	name        string
	status      string
	topic       string
	deliveryURL string
	secret      string
}

func (f *webhookFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "Friendly name")
	fs.StringVar(&f.status, "status", "", "Status: active|paused|disabled")
	fs.StringVar(&f.topic, "topic", "", "Event topic, e.g. order.created, product.updated, action.woocommerce_add_to_cart")
	fs.StringVar(&f.deliveryURL, "delivery-url", "", "URL the payload is delivered to")
	fs.StringVar(&f.secret, "secret", "", "Secret used to sign the payload (X-WC-Webhook-Signature)")
}

func (f *webhookFields) apply(_ context.Context, cmd *cobra.Command, _ *session, w *api.Webhook) error {
	changed := cmd.Flags().Changed
	if changed("name") {
		w.Name = api.Ptr(f.name)
	}
	if changed("status") {
		switch f.status {
		case api.WebhookStatusActive, api.WebhookStatusPaused, api.WebhookStatusDisabled:
		default:
			return fmt.Errorf("--status must be active, paused or disabled")
		}
		w.Status = api.Ptr(f.status)
	}
	if changed("topic") {
		w.Topic = api.Ptr(f.topic)
	}
	if changed("delivery-url") {
		if err := validation.DeliveryURL(f.deliveryURL); err != nil {
			return fmt.Errorf("invalid value for --delivery-url %q: %w", f.deliveryURL, err)
		}
		w.DeliveryURL = api.Ptr(f.deliveryURL)
	}
	if changed("secret") {
		w.Secret = api.Ptr(f.secret)
	}
	return nil
}
