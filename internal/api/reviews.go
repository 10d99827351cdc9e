package api

import (
	"context"
)

// Review statuses.
const (
	ReviewStatusApproved = "approved"
	ReviewStatusHold     = "hold"
	ReviewStatusSpam     = "spam"
	ReviewStatusUnspam   = "unspam"
	ReviewStatusTrash    = "trash"
	ReviewStatusUntrash  = "untrash"
)

// Review is a product review. Updates send only changed fields.
type Review struct {
	Tracker `json:"-"`

	ID                 int               `json:"id,omitempty"`
	DateCreated        *Time             `json:"date_created,omitempty"`
	DateCreatedGMT     *Time             `json:"date_created_gmt,omitempty"`
	ProductID          *int              `json:"product_id,omitempty"`
	Status             *string           `json:"status,omitempty"`
	Reviewer           *string           `json:"reviewer,omitempty"`
	ReviewerEmail      *string           `json:"reviewer_email,omitempty"`
	Review             *string           `json:"review,omitempty"`
	Rating             *int              `json:"rating,omitempty"`
	Verified           bool              `json:"verified,omitempty"`
	ReviewerAvatarURLs map[string]string `json:"reviewer_avatar_urls,omitempty"`
}

// ReviewListParams filters product reviews.
type ReviewListParams struct {
	ListParams

	Reviewer        []int
	ReviewerExclude []int
	ReviewerEmail   string
	Product         []int
	Status          string
}

func (p ReviewListParams) params() Params {
	params := p.ListParams.params()
	params["reviewer"] = p.Reviewer
	params["reviewer_exclude"] = p.ReviewerExclude
	setString(params, "reviewer_email", p.ReviewerEmail)
	params["product"] = p.Product
	setString(params, "status", p.Status)
	return params
}

// List retrieves product reviews.
func (s ReviewsService) List(ctx context.Context, params ReviewListParams) (*Page[Review], error) {
	return List[Review](ctx, s, "products/reviews", params.params(), params.ListOptions)
}

// Get retrieves a review. It returns nil when it does not exist.
func (s ReviewsService) Get(ctx context.Context, id int) (*Review, error) {
	return getOne[Review](ctx, s, endpointf("products/reviews/%d", id), nil)
}

// Create creates a review.
func (s ReviewsService) Create(ctx context.Context, review *Review) (*Review, error) {
	return create[Review](ctx, s, "products/reviews", review)
}

// Update sends the fields of review that changed since it was fetched.
func (s ReviewsService) Update(ctx context.Context, id int, review *Review) (*Review, error) {
	return update[Review](ctx, s, endpointf("products/reviews/%d", id), review)
}

// Delete deletes a review. Without force it is moved to the trash. The
// endpoint wraps the removed review in a Deleted envelope.
func (s ReviewsService) Delete(ctx context.Context, id int, force bool) (*Deleted, error) {
	return remove[Deleted](ctx, s, endpointf("products/reviews/%d", id), forceParams(force))
}
