package amazon

import (
	"net/url"
	"sort"
	"strings"
)

// serviceID is the fixed service identifier every request carries.
const serviceID = "AWSECommerceService"

// Canonicalize builds the deterministic query string the signature is
// computed over. It injects the service identifier and the access key,
// percent-encodes every value, and sorts the key=value pairs
// lexicographically by the full pair string. The same string doubles as
// the memoization key, so it must be byte-stable for a given input.
func Canonicalize(params map[string]string, accessKey string) string {
	merged := make(map[string]string, len(params)+2)
	for k, v := range params {
		merged[k] = v
	}
	// The fixed entries win over caller-supplied duplicates so the
	// query never carries the same key twice.
	merged["Service"] = serviceID
	merged["AWSAccessKeyId"] = accessKey

	pairs := make([]string, 0, len(merged))
	for k, v := range merged {
		pairs = append(pairs, k+"="+percentEncode(v))
	}

	// Sorting the full pair, not the key alone, is what the vendor
	// signing algorithm specifies; the two differ once values start
	// with characters that sort below '='.
	sort.Strings(pairs)
	return strings.Join(pairs, "&")
}

// percentEncode applies form encoding and then normalizes the '+' it
// produces for spaces into %20. The vendor signs against %20, so
// leaving a literal '+' in place produces an invalid signature.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
