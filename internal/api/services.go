package api

// Service accessors group Client methods by resource.
// Each service embeds *Client so it satisfies Requester.

type CouponsService struct{ *Client }

type CustomersService struct{ *Client }

type OrdersService struct{ *Client }

type OrderNotesService struct{ *Client }

type OrderRefundsService struct{ *Client }

type ProductsService struct{ *Client }

type VariationsService struct{ *Client }

type CategoriesService struct{ *Client }

type TagsService struct{ *Client }

type AttributesService struct{ *Client }

type AttributeTermsService struct{ *Client }

type ReviewsService struct{ *Client }

type PaymentGatewaysService struct{ *Client }

type WebhooksService struct{ *Client }

type ReportsService struct{ *Client }

type SettingsService struct{ *Client }

type TaxClassesService struct{ *Client }

type TaxRatesService struct{ *Client }

type DataService struct{ *Client }

func (c *Client) Coupons() CouponsService {
	return CouponsService{c}
}

func (c *Client) Customers() CustomersService {
	return CustomersService{c}
}

func (c *Client) Orders() OrdersService {
	return OrdersService{c}
}

func (c *Client) OrderNotes() OrderNotesService {
	return OrderNotesService{c}
}

func (c *Client) OrderRefunds() OrderRefundsService {
	return OrderRefundsService{c}
}

func (c *Client) Products() ProductsService {
	return ProductsService{c}
}

func (c *Client) Variations() VariationsService {
	return VariationsService{c}
}

func (c *Client) Categories() CategoriesService {
	return CategoriesService{c}
}

func (c *Client) Tags() TagsService {
	return TagsService{c}
}

func (c *Client) Attributes() AttributesService {
	return AttributesService{c}
}

func (c *Client) AttributeTerms() AttributeTermsService {
	return AttributeTermsService{c}
}

func (c *Client) Reviews() ReviewsService {
	return ReviewsService{c}
}

func (c *Client) PaymentGateways() PaymentGatewaysService {
	return PaymentGatewaysService{c}
}

func (c *Client) Webhooks() WebhooksService {
	return WebhooksService{c}
}

func (c *Client) Reports() ReportsService {
	return ReportsService{c}
}

func (c *Client) Settings() SettingsService {
	return SettingsService{c}
}

func (c *Client) TaxClasses() TaxClassesService {
	return TaxClassesService{c}
}

func (c *Client) TaxRates() TaxRatesService {
	return TaxRatesService{c}
}

func (c *Client) Data() DataService {
	return DataService{c}
}
