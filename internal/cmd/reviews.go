package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woopy/woo-cli/internal/api"
)

var reviewColumns = columns[api.Review]{
	headers: []string{"ID", "PRODUCT", "REVIEWER", "RATING", "STATUS", "DATE", "REVIEW"},
	row: func(r api.Review) []string {
		return []string{
			strconv.Itoa(r.ID),
			intStr(r.ProductID),
			str(r.Reviewer),
			ratingStars(r.Rating),
			str(r.Status),
			dateStr(r.DateCreated),
			truncate(stripTags(str(r.Review)), 50),
		}
	},
}

func ratingStars(rating *int) string {
	if rating == nil {
		return ""
	}
	n := min(max(*rating, 0), 5)
	return strings.Repeat("*", n) + strings.Repeat(".", 5-n)
}

// stripTags drops HTML tags from short rendered text such as review bodies.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var reviews = resource[api.Review]{
	singular: "review",
	plural:   "reviews",
	cols:     reviewColumns,
	title:    func(r *api.Review) string { return str(r.Reviewer) },
	id:       func(r *api.Review) any { return r.ID },
	get: func(ctx context.Context, c *api.Client, _ []int, id int) (*api.Review, error) {
		return c.Reviews().Get(ctx, id)
	},
	create: func(ctx context.Context, c *api.Client, _ []int, v *api.Review) (*api.Review, error) {
		return c.Reviews().Create(ctx, v)
	},
	update: func(ctx context.Context, c *api.Client, _ []int, id int, v *api.Review) (*api.Review, error) {
		return c.Reviews().Update(ctx, id, v)
	},
	remove: func(ctx context.Context, c *api.Client, _ []int, id int, force bool) (any, error) {
		return c.Reviews().Delete(ctx, id, force)
	},
	canTrash: true,
	fields:   func() mutation[api.Review] { return &reviewFields{} },
	example: `  woo reviews create --product 22 --reviewer "John Doe" --reviewer-email john@example.com --rating 5 --review "Nice album!"
  woo reviews update 20 --status approved`,
}

func newReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reviews",
		Aliases: []string{"review"},
		Short:   "Manage product reviews",
	}
	cmd.AddCommand(newReviewsListCmd())
	cmd.AddCommand(reviews.getCmd())
	cmd.AddCommand(reviews.createCmd())
	cmd.AddCommand(reviews.updateCmd())
	cmd.AddCommand(reviews.deleteCmd())
	return cmd
}

func newReviewsListCmd() *cobra.Command {
	var (
		lf              listFlags
		reviewer        []int
		reviewerExclude []int
		reviewerEmail   string
		product         []int
		status          string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List product reviews",
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
			page, err := client.Reviews().List(cmdContext(cmd), api.ReviewListParams{
				ListParams:      base,
				Reviewer:        reviewer,
				ReviewerExclude: reviewerExclude,
				ReviewerEmail:   reviewerEmail,
				Product:         product,
				Status:          status,
			})
			if err != nil {
				return err
			}
			return printPage(cmd, page, reviewColumns, "reviews")
		}),
	}

	lf.register(cmd)
	fs := cmd.Flags()
	fs.IntSliceVar(&reviewer, "reviewer", nil, "Only reviews by these user IDs")
	fs.IntSliceVar(&reviewerExclude, "reviewer-exclude", nil, "Exclude reviews by these user IDs")
	fs.StringVar(&reviewerEmail, "reviewer-email", "", "Only reviews by this email")
	fs.IntSliceVar(&product, "product", nil, "Only reviews of these product IDs")
	fs.StringVar(&status, "status", "", "Filter by status: all|hold|approved|spam|trash")
	return cmd
}

type reviewFields struct {
	product       int
	reviewer      string
	reviewerEmail string
	review        string
	rating        int
	status        string
}

func (f *reviewFields) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.product, "product", 0, "Reviewed product ID")
	fs.StringVar(&f.reviewer, "reviewer", "", "Reviewer name")
	fs.StringVar(&f.reviewerEmail, "reviewer-email", "", "Reviewer email")
	fs.StringVar(&f.review, "review", "", "Review text")
	fs.IntVar(&f.rating, "rating", 0, "Rating from 0 to 5")
	fs.StringVar(&f.status, "status", "", "Status: approved|hold|spam|unspam|trash|untrash")
}

func (f *reviewFields) apply(_ context.Context, cmd *cobra.Command, _ *session, r *api.Review) error {
	changed := cmd.Flags().Changed
	if changed("product") {
		r.ProductID = api.Ptr(f.product)
	}
	if changed("reviewer") {
		r.Reviewer = api.Ptr(f.reviewer)
	}
	if changed("reviewer-email") {
		r.ReviewerEmail = api.Ptr(f.reviewerEmail)
	}
	if changed("review") {
		r.Review = api.Ptr(f.review)
	}
	if changed("rating") {
		if f.rating < 0 || f.rating > 5 {
			return fmt.Errorf("--rating must be between 0 and 5")
		}
		r.Rating = api.Ptr(f.rating)
	}
	if changed("status") {
		r.Status = api.Ptr(f.status)
	}
	return nil
}
