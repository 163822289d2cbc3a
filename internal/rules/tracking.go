package rules

import (
	"net/url"
	"strings"
)

// carrierURLs maps lowercase carrier names to tracking URL templates with a
// {trackingNumber} placeholder.
var carrierURLs = map[string]string{
	"ups":        "https://www.ups.com/track?tracknum={trackingNumber}",
	"fedex":      "https://www.fedex.com/fedextrack/?trknbr={trackingNumber}",
	"usps":       "https://tools.usps.com/go/TrackConfirmAction?tLabels={trackingNumber}",
	"dhl":        "https://www.dhl.com/en/express/tracking.html?AWB={trackingNumber}",
	"ontrac":     "https://www.ontrac.com/tracking/?number={trackingNumber}",
	"lasership":  "https://www.lasership.com/track/{trackingNumber}",
	"canadapost": "https://www.canadapost-postescanada.ca/track-reperage/en#/search?searchFor={trackingNumber}",
	"royalmail":  "https://www.royalmail.com/track-your-item#/tracking-results/{trackingNumber}",
	"amazon":     "https://track.amazon.com/tracking/{trackingNumber}",
}

// GenerateTrackingURL resolves a carrier name (case-insensitive) to that
// carrier's tracking page for the given tracking number. Unknown carriers
// degrade to a search-engine query so a trackable shipment always resolves
// to some navigable URL.
func GenerateTrackingURL(carrier, trackingNumber string) string {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(carrier), " ", ""))
	if template, ok := carrierURLs[key]; ok {
		return strings.ReplaceAll(template, "{trackingNumber}", url.QueryEscape(trackingNumber))
	}
	query := url.QueryEscape(strings.TrimSpace(carrier) + " tracking " + trackingNumber)
	return "https://www.google.com/search?q=" + query
}
