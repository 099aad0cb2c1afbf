package catalog

// Item is one downloadable file record returned by the products API.
// Items are treated as immutable once received.
type Item struct {
	Title       string   `json:"title"`
	SourceID    string   `json:"sourceId"`
	DownloadURL string   `json:"downloadURL"`
	SizeInBytes int64    `json:"sizeInBytes,omitempty"`
	Datasets    []string `json:"datasets"`
}

// ProductsResponse is the envelope returned by the products endpoint.
type ProductsResponse struct {
	Total    int      `json:"total"`
	Items    []Item   `json:"items"`
	Messages []string `json:"messages"`
	Errors   []string `json:"errors"`
}
