package availability

import (
	"bitbucket.org/crgw/availability-pricer/internal/pricing"
	"bitbucket.org/crgw/availability-pricer/internal/rules"
	"bitbucket.org/crgw/availability-pricer/internal/schema"
	"github.com/shopspring/decimal"
)

// NetPriceLookup resolves the supplier net price of a request.
type NetPriceLookup interface {
	LookupNetPrice(Request) decimal.Decimal
}

// FixedNetPrice prices every request the same.
type FixedNetPrice decimal.Decimal

func (p FixedNetPrice) LookupNetPrice(Request) decimal.Decimal {
	return decimal.Decimal(p)
}

type IdentityGenerator interface {
	OfferID() string
	HotelCode() string
}

type Builder struct {
	markup        decimal.Decimal
	defaultMarket string
	rates         pricing.Table
	netPrices     NetPriceLookup
	ids           IdentityGenerator
}

func NewBuilder(r rules.Rules, netPrices NetPriceLookup, ids IdentityGenerator) *Builder {
	return &Builder{
		markup:        r.MarkupPercentage,
		defaultMarket: r.Markets.Default(),
		rates:         pricing.NewTable(r.ExchangeRates),
		netPrices:     netPrices,
		ids:           ids,
	}
}

// market falls back to the default market only for an empty nationality,
// which the extractor never produces with a valid rule set.
func (b *Builder) market(request Request) string {
	if request.Nationality == "" {
		return b.defaultMarket
	}

	return request.Nationality
}

func (b *Builder) Build(request Request) []schema.Offer {
	net := b.netPrices.LookupNetPrice(request)

	return []schema.Offer{
		{
			ID:                b.ids.OfferID(),
			HotelCodeSupplier: b.ids.HotelCode(),
			Market:            b.market(request),
			Price: schema.OfferPrice{
				MinimumSellingPrice: nil,
				Currency:            request.Currency,
				Net:                 schema.Amount(net),
				SellingPrice:        schema.Amount(pricing.SellingPrice(net, b.markup)),
				SellingCurrency:     request.Currency,
				Markup:              schema.Ratio(b.markup),
				ExchangeRate:        schema.Ratio(b.rates.ExchangeRate(request.Currency)),
			},
		},
	}
}

// Render builds the offer document as indented JSON.
func (b *Builder) Render(request Request) (string, error) {
	return marshalDocument(b.Build(request))
}

func marshalDocument(value any) (string, error) {
	content, err := schema.Marshal(value)
	if err != nil {
		return "", err
	}

	return string(content), nil
}
