package schema

type Offer struct {
	ID                string     `json:"id"`
	HotelCodeSupplier string     `json:"hotelCodeSupplier"`
	Market            string     `json:"market"`
	Price             OfferPrice `json:"price"`
}

type OfferPrice struct {
	// Always null for now.
	MinimumSellingPrice *Amount `json:"minimumSellingPrice"`
	Currency            string  `json:"currency"`
	Net                 Amount  `json:"net"`
	SellingPrice        Amount  `json:"selling_price"`
	SellingCurrency     string  `json:"selling_currency"`
	Markup              Ratio   `json:"markup"`
	ExchangeRate        Ratio   `json:"exchange_rate"`
}
