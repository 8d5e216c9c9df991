package schema

// ErrorDocument replaces the offer array when a request can not be processed.
type ErrorDocument struct {
	Error string `json:"error"`
}

func NewErrorDocument(err error) ErrorDocument {
	return ErrorDocument{
		Error: err.Error(),
	}
}
