package api

import (
	"context"
)

// Customer is a registered customer.
type Customer struct {
	Timestamps

	ID               int             `json:"id,omitempty"`
	Email            *string         `json:"email,omitempty"`
	FirstName        *string         `json:"first_name,omitempty"`
	LastName         *string         `json:"last_name,omitempty"`
	Role             string          `json:"role,omitempty"`
	Username         *string         `json:"username,omitempty"`
	Password         *string         `json:"password,omitempty"`
	Billing          *BillingAddress `json:"billing,omitempty"`
	Shipping         *Address        `json:"shipping,omitempty"`
	IsPayingCustomer bool            `json:"is_paying_customer,omitempty"`
	AvatarURL        string          `json:"avatar_url,omitempty"`
	MetaData         []MetaData      `json:"meta_data,omitempty"`
}

// CustomerListParams filters customers.
type CustomerListParams struct {
	ListParams

	Email string
	Role  string
}

func (p CustomerListParams) params() Params {
	params := p.ListParams.params()
	setString(params, "email", p.Email)
	setString(params, "role", p.Role)
	return params
}

// List retrieves customers.
func (s CustomersService) List(ctx context.Context, params CustomerListParams) (*Page[Customer], error) {
	return List[Customer](ctx, s, "customers", params.params(), params.ListOptions)
}

// Get retrieves a customer. It returns nil when it does not exist.
func (s CustomersService) Get(ctx context.Context, id int) (*Customer, error) {
	return getOne[Customer](ctx, s, endpointf("customers/%d", id), nil)
}

// Create creates a customer.
func (s CustomersService) Create(ctx context.Context, customer *Customer) (*Customer, error) {
	return create[Customer](ctx, s, "customers", customer)
}

// Update sends every set field of customer.
func (s CustomersService) Update(ctx context.Context, id int, customer *Customer) (*Customer, error) {
	return update[Customer](ctx, s, endpointf("customers/%d", id), customer)
}

// Delete deletes a customer. Customers do not support the trash. A
// non-zero reassign moves the customer's posts to that user.
func (s CustomersService) Delete(ctx context.Context, id, reassign int) (*Customer, error) {
	params := forceParams(true)
	setInt(params, "reassign", reassign)
	return remove[Customer](ctx, s, endpointf("customers/%d", id), params)
}
