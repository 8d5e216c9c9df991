package rules

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrDefaultNotAllowed = errors.New("default value is not in the allowed set")
	ErrInvalidQuota      = errors.New("invalid options quota limits")
	ErrInvalidMarkup     = errors.New("markup can not be negative")
	ErrInvalidRate       = errors.New("exchange rate must be positive")
	ErrInvalidNetPrice   = errors.New("invalid net price")
)

// Enum is a closed set of accepted values with the value used in place of anything else.
type Enum struct {
	allowed  map[string]struct{}
	fallback string
}

func NewEnum(fallback string, allowed ...string) Enum {
	set := make(map[string]struct{}, len(allowed))
	for _, value := range allowed {
		set[value] = struct{}{}
	}

	return Enum{
		allowed:  set,
		fallback: fallback,
	}
}

func (e Enum) Default() string {
	return e.fallback
}

func (e Enum) Allows(value string) bool {
	_, ok := e.allowed[value]
	return ok
}

// Normalize returns the value when allowed, the default otherwise. Nil means the element was absent.
func (e Enum) Normalize(value *string) string {
	if value == nil || !e.Allows(*value) {
		return e.fallback
	}

	return *value
}

// Values returns the allowed set, sorted.
func (e Enum) Values() []string {
	values := make([]string, 0, len(e.allowed))
	for value := range e.allowed {
		values = append(values, value)
	}
	sort.Strings(values)

	return values
}

type Quota struct {
	Default int
	Max     int
}

// Clamp keeps the smaller of value and the configured maximum.
func (q Quota) Clamp(value int) int {
	if value > q.Max {
		return q.Max
	}

	return value
}

// Rules is the immutable rule set shared by request extraction and pricing.
type Rules struct {
	Languages         Enum
	Currencies        Enum
	Nationalities     Enum
	Markets           Enum
	OptionsQuota      Quota
	DefaultSearchType string
	MarkupPercentage  decimal.Decimal
	NetPrice          decimal.Decimal
	ExchangeRates     map[string]decimal.Decimal
}

func Default() Rules {
	return Rules{
		Languages:     NewEnum("en", "en", "fr", "de", "es"),
		Currencies:    NewEnum("EUR", "EUR", "USD", "GBP"),
		Nationalities: NewEnum("US", "US", "GB", "CA"),
		Markets:       NewEnum("ES", "US", "GB", "CA", "ES"),
		OptionsQuota: Quota{
			Default: 20,
			Max:     50,
		},
		DefaultSearchType: "Single",
		MarkupPercentage:  decimal.RequireFromString("3.2"),
		NetPrice:          decimal.RequireFromString("132.42"),
		ExchangeRates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("1.0"),
			"USD": decimal.RequireFromString("1.1"),
			"GBP": decimal.RequireFromString("0.9"),
		},
	}
}

func (r Rules) Validate() error {
	enums := []struct {
		name string
		enum Enum
	}{
		{"languages", r.Languages},
		{"currencies", r.Currencies},
		{"nationalities", r.Nationalities},
		{"markets", r.Markets},
	}

	for _, e := range enums {
		if !e.enum.Allows(e.enum.Default()) {
			return fmt.Errorf("%s: %w: %q", e.name, ErrDefaultNotAllowed, e.enum.Default())
		}
	}

	if r.OptionsQuota.Max < 0 || r.OptionsQuota.Default < 0 {
		return fmt.Errorf("%w: default %d, max %d", ErrInvalidQuota, r.OptionsQuota.Default, r.OptionsQuota.Max)
	}

	if r.MarkupPercentage.IsNegative() {
		return ErrInvalidMarkup
	}

	if r.NetPrice.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidNetPrice, r.NetPrice)
	}

	// offers render money in cents
	if !r.NetPrice.Equal(r.NetPrice.Round(2)) {
		return fmt.Errorf("%w: more than two decimals in %s", ErrInvalidNetPrice, r.NetPrice)
	}

	for currency, rate := range r.ExchangeRates {
		if !rate.IsPositive() {
			return fmt.Errorf("%w: %s", ErrInvalidRate, currency)
		}
	}

	return nil
}

type enumFile struct {
	Default *string  `yaml:"default"`
	Allowed []string `yaml:"allowed"`
}

type quotaFile struct {
	Default *int `yaml:"default"`
	Max     *int `yaml:"max"`
}

type rulesFile struct {
	Languages         *enumFile          `yaml:"languages"`
	Currencies        *enumFile          `yaml:"currencies"`
	Nationalities     *enumFile          `yaml:"nationalities"`
	Markets           *enumFile          `yaml:"markets"`
	OptionsQuota      *quotaFile         `yaml:"optionsQuota"`
	DefaultSearchType *string            `yaml:"defaultSearchType"`
	MarkupPercentage  *float64           `yaml:"markupPercentage"`
	NetPrice          *float64           `yaml:"netPrice"`
	ExchangeRates     map[string]float64 `yaml:"exchangeRates"`
}

func overlayEnum(base Enum, file *enumFile) Enum {
	if file == nil {
		return base
	}

	fallback := base.Default()
	if file.Default != nil {
		fallback = *file.Default
	}

	allowed := base.Values()
	if file.Allowed != nil {
		allowed = file.Allowed
	}

	return NewEnum(fallback, allowed...)
}

// Parse overlays a YAML rules document on the default rules. Sections left out keep their defaults.
func Parse(content []byte) (Rules, error) {
	var file rulesFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return Rules{}, fmt.Errorf("parse rules: %w", err)
	}

	r := Default()
	r.Languages = overlayEnum(r.Languages, file.Languages)
	r.Currencies = overlayEnum(r.Currencies, file.Currencies)
	r.Nationalities = overlayEnum(r.Nationalities, file.Nationalities)
	r.Markets = overlayEnum(r.Markets, file.Markets)

	if file.OptionsQuota != nil {
		if file.OptionsQuota.Default != nil {
			r.OptionsQuota.Default = *file.OptionsQuota.Default
		}
		if file.OptionsQuota.Max != nil {
			r.OptionsQuota.Max = *file.OptionsQuota.Max
		}
	}

	if file.DefaultSearchType != nil {
		r.DefaultSearchType = *file.DefaultSearchType
	}

	if file.MarkupPercentage != nil {
		r.MarkupPercentage = decimal.NewFromFloat(*file.MarkupPercentage)
	}

	if file.NetPrice != nil {
		r.NetPrice = decimal.NewFromFloat(*file.NetPrice)
	}

	if file.ExchangeRates != nil {
		rates := make(map[string]decimal.Decimal, len(file.ExchangeRates))
		for currency, rate := range file.ExchangeRates {
			rates[currency] = decimal.NewFromFloat(rate)
		}
		r.ExchangeRates = rates
	}

	if err := r.Validate(); err != nil {
		return Rules{}, err
	}

	return r, nil
}

// Load reads the rules file at path. An empty path yields the default rules.
func Load(path string) (Rules, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file: %w", err)
	}

	return Parse(content)
}
