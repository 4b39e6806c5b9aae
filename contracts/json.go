package contracts

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

type URL url.URL

func (this *URL) MarshalJSON() ([]byte, error) {
	return []byte(`"` + this.Value().String() + `"`), nil
}

func (this *URL) UnmarshalJSON(p []byte) error {
	raw := string(p)
	if raw == `"null"` {
		return nil
	}
	raw = strings.Trim(raw, "\"")
	address, err := url.Parse(raw)
	if err == nil {
		*this = URL(*address)
	}
	return err
}

func (this URL) Value() *url.URL {
	standard := url.URL(this)
	return &standard
}

// LenientTime tolerates the date formats found in manifests in the
// wild. An unparseable or missing value decodes to the Unix epoch
// rather than failing the whole document.
type LenientTime struct {
	time.Time
}

var lenientFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (this *LenientTime) UnmarshalJSON(p []byte) error {
	raw := strings.Trim(string(p), "\"")
	if raw == "null" || raw == "" {
		this.Time = epoch
		return nil
	}
	if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
		this.Time = time.Unix(0, millis*int64(time.Millisecond)).UTC()
		return nil
	}
	for _, format := range lenientFormats {
		if parsed, err := time.Parse(format, raw); err == nil {
			this.Time = parsed
			return nil
		}
	}
	this.Time = epoch
	return nil
}

func (this LenientTime) MarshalJSON() ([]byte, error) {
	if this.IsZero() {
		return []byte(`"` + epoch.Format(time.RFC3339) + `"`), nil
	}
	return []byte(`"` + this.Format(time.RFC3339) + `"`), nil
}

// IsEpoch reports whether the date is absent or defaulted, which
// repositories surface as a warning during manifest load.
func (this LenientTime) IsEpoch() bool {
	return this.IsZero() || this.Unix() == 0
}

var epoch = time.Unix(0, 0).UTC()
