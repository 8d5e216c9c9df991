package availability

import (
	"io"
	"strconv"
	"strings"

	"bitbucket.org/crgw/availability-pricer/internal/availability/ota"
	"bitbucket.org/crgw/availability-pricer/internal/rules"
	"bitbucket.org/crgw/availability-pricer/internal/tools/converting"
)

// Parse decodes an availability request document.
func Parse(document string) (ota.AvailRQ, error) {
	return Decode(strings.NewReader(document))
}

// Decode reads a request document from r.
func Decode(r io.Reader) (ota.AvailRQ, error) {
	rq, err := ota.Decode(r)
	if err != nil {
		return ota.AvailRQ{}, &ParseError{Err: err}
	}

	return rq, nil
}

type Extractor struct {
	rules rules.Rules
}

func NewExtractor(r rules.Rules) *Extractor {
	return &Extractor{
		rules: r,
	}
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}

	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}

	return true
}

func (e *Extractor) optionsQuota(value *string) int {
	quota := e.rules.OptionsQuota
	if value == nil || !isDigits(*value) {
		return quota.Clamp(quota.Default)
	}

	parsed, err := strconv.Atoi(*value)
	if err != nil {
		// only digits, so the literal is out of int range
		return quota.Max
	}

	return quota.Clamp(parsed)
}

func checkCredentials(parameter *ota.Parameter) error {
	if parameter == nil {
		return &MissingCredentialsError{}
	}

	missing := []string{}
	if parameter.Password == nil {
		missing = append(missing, "password")
	}
	if parameter.Username == nil {
		missing = append(missing, "username")
	}
	if parameter.CompanyID == nil {
		missing = append(missing, "CompanyID")
	}

	if len(missing) > 0 {
		return &MissingCredentialsError{Fields: missing}
	}

	return nil
}

// Extract validates and defaults a decoded request. Only missing credentials fail.
func (e *Extractor) Extract(rq ota.AvailRQ) (Request, error) {
	if err := checkCredentials(rq.Credentials); err != nil {
		return Request{}, err
	}

	return Request{
		Language:     e.rules.Languages.Normalize(rq.LanguageCode),
		OptionsQuota: e.optionsQuota(rq.OptionsQuota),
		SearchType:   converting.UnwrapOr(rq.SearchType, e.rules.DefaultSearchType),
		StartDate:    rq.StartDate,
		EndDate:      rq.EndDate,
		Currency:     e.rules.Currencies.Normalize(rq.Currency),
		Nationality:  e.rules.Nationalities.Normalize(rq.Nationality),
	}, nil
}

func (e *Extractor) ExtractDocument(document string) (Request, error) {
	rq, err := Parse(document)
	if err != nil {
		return Request{}, err
	}

	return e.Extract(rq)
}
