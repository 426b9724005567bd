package collect

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// kbToGB converts a volume in kB to GB rounded to one decimal, the unit
// the Telenet portal displays.
func kbToGB(kb float64) float64 {
	return round1(kb / 1048576)
}

// strToFloat parses a comma-decimal amount string ("12,34") as a float.
func strToFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// wifiQR renders wireless settings as a WIFI: QR payload. Colons in the
// passphrase are escaped per the QR wifi syntax.
func wifiQR(ssid, passphrase string) string {
	escaped := strings.ReplaceAll(passphrase, ":", `\:`)
	return fmt.Sprintf("WIFI:S:%s;T:WPA;P:%s;;", ssid, escaped)
}

// periodLayouts are the timestamp layouts seen on billing-period bounds.
// The API writes a fixed ".0" fraction; the zone renders with or without a
// colon depending on the backend.
var periodLayouts = []string{
	"2006-01-02T15:04:05.0-0700",
	"2006-01-02T15:04:05.0-07:00",
}

func parsePeriodTime(value string) (time.Time, error) {
	var err error
	for _, layout := range periodLayouts {
		var ts time.Time
		if ts, err = time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}
