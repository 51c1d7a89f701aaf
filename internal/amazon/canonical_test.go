package amazon_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/amazon-catalog/internal/amazon"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    map[string]string
		accessKey string
		want      string
	}{
		{
			name:      "injects service and access key",
			params:    map[string]string{"ItemId": "X", "Operation": "ItemLookup"},
			accessKey: "AK",
			want:      "AWSAccessKeyId=AK&ItemId=X&Operation=ItemLookup&Service=AWSECommerceService",
		},
		{
			name:      "no parameters still yields fixed entries",
			params:    nil,
			accessKey: "AK",
			want:      "AWSAccessKeyId=AK&Service=AWSECommerceService",
		},
		{
			name:      "spaces become percent-20, never plus",
			params:    map[string]string{"Keywords": "go programming"},
			accessKey: "AK",
			want:      "AWSAccessKeyId=AK&Keywords=go%20programming&Service=AWSECommerceService",
		},
		{
			name:      "reserved characters are escaped",
			params:    map[string]string{"Keywords": "a&b=c"},
			accessKey: "AK",
			want:      "AWSAccessKeyId=AK&Keywords=a%26b%3Dc&Service=AWSECommerceService",
		},
		{
			name: "caller-supplied fixed entries are not duplicated",
			params: map[string]string{
				"Service":        "SomethingElse",
				"AWSAccessKeyId": "STALE",
				"ItemId":         "X",
			},
			accessKey: "AK",
			want:      "AWSAccessKeyId=AK&ItemId=X&Service=AWSECommerceService",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := amazon.Canonicalize(tt.params, tt.accessKey)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalize_Deterministic(t *testing.T) {
	t.Parallel()

	params := map[string]string{
		"Operation":   "ItemSearch",
		"Keywords":    "ruby on rails",
		"SearchIndex": "Books",
		"ItemPage":    "2",
	}

	first := amazon.Canonicalize(params, "AK")
	for range 50 {
		assert.Equal(t, first, amazon.Canonicalize(params, "AK"))
	}
	assert.NotContains(t, first, "+")
}

func TestCanonicalize_SortsByFullPair(t *testing.T) {
	t.Parallel()

	// "A1=a" sorts before "A=z" because '1' < '=', even though the
	// bare keys sort the other way. The signature depends on this.
	got := amazon.Canonicalize(map[string]string{"A": "z", "A1": "a"}, "AK")

	a1 := strings.Index(got, "A1=a")
	a := strings.Index(got, "A=z")
	assert.GreaterOrEqual(t, a1, 0)
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a1, a)
}
