// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package classify

import (
	"strings"

	"github.com/juan-28/entertainment-analysis/internal/models"
)

type deviceRule struct {
	keywords []string
	category models.DeviceCategory
}

// deviceRules are evaluated in order against the lowercased device name and
// the first rule with a matching keyword wins. The streaming keywords that
// contain "tv" run ahead of the generic smart TV rule, otherwise "Apple TV"
// and "FireTV" devices would be reported as smart TVs.
var deviceRules = []deviceRule{
	{[]string{"iphone", "ipad"}, models.DeviceAppleMobile},
	{[]string{"chrome", "edge", "safari"}, models.DeviceWebBrowser},
	{[]string{"apple tv", "firetv"}, models.DeviceStreaming},
	{[]string{"android tv", "smart tv", "tv"}, models.DeviceSmartTV},
	{[]string{"streaming stick", "chromecast", "firetv", "apple tv", "roku"}, models.DeviceStreaming},
	{[]string{"ps4", "ps3"}, models.DeviceGameConsole},
	{[]string{"set top box"}, models.DeviceSetTopBox},
}

// CategorizeDevice maps a raw device name to its category. Names matching no
// rule, including the empty name, are DeviceOther.
func CategorizeDevice(raw string) models.DeviceCategory {
	name := strings.ToLower(raw)
	for _, rule := range deviceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category
			}
		}
	}
	return models.DeviceOther
}

// ApplyDevices categorizes every record from its raw device name and clears
// the raw value. Records already categorized and without a raw value are
// left alone, so applying it twice changes nothing.
func ApplyDevices(records []models.ActivityRecord) {
	for i := range records {
		r := &records[i]
		if r.RawDevice == "" && r.DeviceCategory != models.DeviceUnknown {
			continue
		}
		r.DeviceCategory = CategorizeDevice(r.RawDevice)
		r.RawDevice = ""
	}
}
