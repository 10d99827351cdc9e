package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
)

var orderNoteColumns = columns[api.OrderNote]{
	headers: []string{"ID", "AUTHOR", "CUSTOMER", "DATE", "NOTE"},
	row: func(n api.OrderNote) []string {
		return []string{
			strconv.Itoa(n.ID),
			n.Author,
			strconv.FormatBool(n.CustomerNote),
			dateStr(n.DateCreated),
			truncate(n.Note, 60),
		}
	},
}

var orderNotes = resource[api.OrderNote]{
	singular: "note",
	plural:   "notes",
	parents:  []string{"order"},
	cols:     orderNoteColumns,
	title:    func(n *api.OrderNote) string { return truncate(n.Note, 40) },
	id:       func(n *api.OrderNote) any { return n.ID },
	get: func(ctx context.Context, c *api.Client, parents []int, id int) (*api.OrderNote, error) {
		return c.OrderNotes().Get(ctx, parents[0], id)
	},
	create: func(ctx context.Context, c *api.Client, parents []int, v *api.OrderNote) (*api.OrderNote, error) {
		if v.Note == "" {
			return nil, fmt.Errorf("--note is required")
		}
		return c.OrderNotes().Create(ctx, parents[0], v)
	},
	remove: func(ctx context.Context, c *api.Client, parents []int, id int, _ bool) (any, error) {
		return c.OrderNotes().Delete(ctx, parents[0], id)
	},
	fields:  func() mutation[api.OrderNote] { return &orderNoteFields{} },
	example: `  woo order-notes create 727 --note "Order ok!!!" --customer-note`,
}

func newOrderNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "order-notes",
		Aliases: []string{"notes", "note"},
		Short:   "Manage order notes",
		Long:    "Manage order notes. Notes cannot be edited once added.",
	}
	cmd.AddCommand(newOrderNotesListCmd())
	cmd.AddCommand(orderNotes.getCmd())
	cmd.AddCommand(orderNotes.createCmd())
	cmd.AddCommand(orderNotes.deleteCmd())
	return cmd
}

func newOrderNotesListCmd() *cobra.Command {
	var (
		lf       listFlags
		noteType string
	)

	cmd := &cobra.Command{
		Use:     "list <order-id>",
		Aliases: []string{"ls"},
		Short:   "List the notes of an order",
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			orderID, err := parseID(args[0], "order")
			if err != nil {
				return err
			}
			opts, err := lf.options()
			if err != nil {
				return err
			}
			switch noteType {
			case "", "any", "customer", "internal":
			default:
				return fmt.Errorf("--type must be any, customer or internal")
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			page, err := client.OrderNotes().List(cmdContext(cmd), orderID, api.OrderNoteListParams{
				ListOptions: opts,
				Type:        noteType,
			})
			if err != nil {
				return err
			}
			return printPage(cmd, page, orderNoteColumns, "notes")
		}),
	}

	lf.registerPaging(cmd)
	cmd.Flags().StringVar(&noteType, "type", "", "Note type: any|customer|internal")
	return cmd
}

type orderNoteFields struct {
	note         string
	customerNote bool
}

func (f *orderNoteFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.note, "note", "", "Note text")
	fs.BoolVar(&f.customerNote, "customer-note", false, "Show the note to the customer and email it")
}

func (f *orderNoteFields) apply(_ context.Context, cmd *cobra.Command, _ *session, n *api.OrderNote) error {
	if cmd.Flags().Changed("note") {
		n.Note = f.note
	}
	if cmd.Flags().Changed("customer-note") {
		n.CustomerNote = f.customerNote
	}
	return nil
}
