package domain

import "encoding/json"

// Blob is a stored Git blob as returned by the API. The content field may
// represent up to 100 MB of decoded data; Size is the decoded byte count.
type Blob struct {
	Content string `json:"content"`
	URL     string `json:"url"`
	SHA     string `json:"sha"`
	Size    int64  `json:"size"`
}

func (b *Blob) UnmarshalJSON(data []byte) error {
	var raw struct {
		Content *string `json:"content"`
		URL     *string `json:"url"`
		SHA     *string `json:"sha"`
		Size    *int64  `json:"size"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Type: "Blob", Err: err}
	}
	switch {
	case raw.Content == nil:
		return missingField("Blob", "content")
	case raw.URL == nil:
		return missingField("Blob", "url")
	case raw.SHA == nil:
		return missingField("Blob", "sha")
	case raw.Size == nil:
		return missingField("Blob", "size")
	}
	*b = Blob{Content: *raw.Content, URL: *raw.URL, SHA: *raw.SHA, Size: *raw.Size}
	return nil
}

// CreateBlob is the request body for uploading a blob. Content is taken
// verbatim; whether it is valid for the chosen encoding is the caller's
// responsibility.
type CreateBlob struct {
	Content  string   `json:"content"`
	Encoding Encoding `json:"encoding"`
}

// NewBlob is the response to a blob upload.
type NewBlob struct {
	URL string `json:"url"`
	SHA string `json:"sha"`
}

func (b *NewBlob) UnmarshalJSON(data []byte) error {
	var raw struct {
		URL *string `json:"url"`
		SHA *string `json:"sha"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Type: "NewBlob", Err: err}
	}
	switch {
	case raw.URL == nil:
		return missingField("NewBlob", "url")
	case raw.SHA == nil:
		return missingField("NewBlob", "sha")
	}
	*b = NewBlob{URL: *raw.URL, SHA: *raw.SHA}
	return nil
}
