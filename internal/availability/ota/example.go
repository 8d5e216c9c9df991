package ota

import (
	_ "embed"
)

// Example is a complete availability request.
//
//go:embed example_availrq.xml
var Example string
