package amazon

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"time"
)

// timestampFormat is the vendor's required ISO-8601 UTC layout at
// second precision.
const timestampFormat = "2006-01-02T15:04:05Z"

// Sign appends the request timestamp to a canonical query and computes
// the HMAC-SHA256 signature over the vendor's fixed payload template:
//
//	GET\n{host}\n{path}\n{query-with-timestamp}
//
// The digest is base64-encoded and percent-encoded before being
// appended as the Signature parameter. The clock is supplied by the
// caller so signing stays reproducible in tests.
func Sign(canonicalQuery, host, path, secret string, now time.Time) string {
	query := canonicalQuery + "&Timestamp=" + percentEncode(now.UTC().Format(timestampFormat))

	payload := "GET\n" + host + "\n" + path + "\n" + query

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return query + "&Signature=" + percentEncode(signature)
}
