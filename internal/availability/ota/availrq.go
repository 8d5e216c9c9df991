package ota

// AvailRQ is an availability request. The root element name is not checked.
// Text fields are nil when the element is absent and empty when it is present without text.
// Each field holds the first matching element in document order, at any depth below the root.
type AvailRQ struct {
	TimeoutMilliseconds *string
	LanguageCode        *string
	OptionsQuota        *string
	Credentials         *Parameter
	SearchType          *string
	StartDate           *string
	EndDate             *string
	Currency            *string
	Nationality         *string
}

// Parameter is the first Configuration/Parameters/Parameter element.
type Parameter struct {
	Password  *string
	Username  *string
	CompanyID *string
}

func fromTree(root *node) AvailRQ {
	rq := AvailRQ{
		TimeoutMilliseconds: root.findText("timeoutMilliseconds"),
		LanguageCode:        root.findText("source", "languageCode"),
		OptionsQuota:        root.findText("optionsQuota"),
		SearchType:          root.findText("SearchType"),
		StartDate:           root.findText("StartDate"),
		EndDate:             root.findText("EndDate"),
		Currency:            root.findText("Currency"),
		Nationality:         root.findText("Nationality"),
	}

	if parameter := root.find("Configuration", "Parameters", "Parameter"); parameter != nil {
		rq.Credentials = &Parameter{
			Password:  parameter.attr("password"),
			Username:  parameter.attr("username"),
			CompanyID: parameter.attr("CompanyID"),
		}
	}

	return rq
}
