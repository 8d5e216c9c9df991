package availability

import (
	"errors"

	"bitbucket.org/crgw/availability-pricer/internal/availability/ota"
	"bitbucket.org/crgw/availability-pricer/internal/schema"
	"bitbucket.org/crgw/availability-pricer/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

type Service struct {
	extractor *Extractor
	builder   *Builder
}

func NewService(extractor *Extractor, builder *Builder) *Service {
	return &Service{
		extractor: extractor,
		builder:   builder,
	}
}

// Respond prices an already decoded request.
func (s *Service) Respond(rq ota.AvailRQ, logger *zerolog.Logger) ([]schema.Offer, error) {
	slowLog := slowlog.CreateLogger(logger)

	slowLog.Start("availability:extract")
	request, err := s.extractor.Extract(rq)
	slowLog.Stop("availability:extract")

	if err != nil {
		logRejected(logger, err)
		return nil, err
	}

	logger.Debug().
		Str("language", request.Language).
		Int("optionsQuota", request.OptionsQuota).
		Str("searchType", request.SearchType).
		Str("currency", request.Currency).
		Str("nationality", request.Nationality).
		Msg("Request normalized")

	slowLog.Start("availability:build")
	offers := s.builder.Build(request)
	slowLog.Stop("availability:build")

	return offers, nil
}

// Transform turns a request document into an offer document, or an error document when the
// request is malformed or lacks credentials.
func (s *Service) Transform(document string, logger *zerolog.Logger) string {
	output, _ := s.Process(document, logger)
	return output
}

// Process is Transform that also reports why an error document was returned.
func (s *Service) Process(document string, logger *zerolog.Logger) (string, error) {
	rq, err := Parse(document)
	if err != nil {
		logRejected(logger, err)
		return ErrorDocument(err), err
	}

	offers, err := s.Respond(rq, logger)
	if err != nil {
		return ErrorDocument(err), err
	}

	output, err := marshalDocument(offers)
	if err != nil {
		logger.Err(err).Msg("Unable to serialize offers")
		return ErrorDocument(err), err
	}

	return output, nil
}

// ErrorDocument renders err as {"error": "<message>"}.
func ErrorDocument(err error) string {
	output, _ := marshalDocument(schema.NewErrorDocument(err))
	return output
}

func logRejected(logger *zerolog.Logger, err error) {
	reason := "unknown"
	switch {
	case errors.Is(err, ErrMalformedDocument):
		reason = "parse"
	case errors.Is(err, ErrMissingCredentials):
		reason = "credentials"
	}

	logger.Warn().
		Err(err).
		Str("reason", reason).
		Msg("Request rejected")
}
