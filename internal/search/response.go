package search

import "encoding/json"

// Response wraps the raw JSON returned by the provider.
type Response struct {
	// Raw is the exact JSON returned by the API.
	Raw json.RawMessage
}

// OrganicResult is one entry of the provider's "organic" array.
type OrganicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// DecodeInto unmarshals the response into v.
func (r Response) DecodeInto(v any) error {
	return json.Unmarshal(r.Raw, v)
}

// Organic returns the organic results and whether the key was present.
// A missing or malformed "organic" value is reported as absent.
func (r Response) Organic() ([]OrganicResult, bool) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(r.Raw, &doc); err != nil {
		return nil, false
	}
	raw, ok := doc["organic"]
	if !ok {
		return nil, false
	}

	var results []OrganicResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, false
	}
	for i := range results {
		if results[i].Title == "" {
			results[i].Title = "No Title"
		}
		if results[i].Snippet == "" {
			results[i].Snippet = "No Snippet"
		}
	}
	return results, true
}

// Texts flattens organic results into the strings scanned for reference
// links: title, link and snippet of each result, in order.
func Texts(results []OrganicResult) []string {
	out := make([]string, 0, len(results)*3)
	for _, r := range results {
		out = append(out, r.Title, r.Link, r.Snippet)
	}
	return out
}
