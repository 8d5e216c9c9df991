package availability

// Request is the normalized availability request. Every enumerated field holds an allowed value.
type Request struct {
	Language     string
	OptionsQuota int
	SearchType   string
	StartDate    *string
	EndDate      *string
	Currency     string
	Nationality  string
}
