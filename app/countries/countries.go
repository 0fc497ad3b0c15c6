// Package countries loads the country-code reference dataset used to fill
// the dialing-code selection on the employee forms.
package countries

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type CountryCode struct {
	Country string `json:"country"`
	Code    string `json:"code"`
	Iso     string `json:"iso"`
}

// Label is the display text for the selection list.
func (c CountryCode) Label() string {
	return c.Country + " (" + c.Code + ")"
}

// Load reads the dataset from data/countryCodes.json under the content root.
// A missing file yields an empty list, not an error.
func Load(contentRoot string) ([]CountryCode, error) {
	path := filepath.Join(contentRoot, "data", "countryCodes.json")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []CountryCode{}, nil
	}
	if err != nil {
		return nil, err
	}

	var codes []CountryCode
	if err := json.Unmarshal(data, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}
