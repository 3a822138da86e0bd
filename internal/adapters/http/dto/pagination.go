package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var (
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrNoCursor signals a first page request.
	ErrNoCursor = errors.New("no cursor provided")
)

// PaginationRequest represents pagination parameters from the query string.
type PaginationRequest struct {
	// Cursor is an opaque string from a previous response's NextCursor.
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit"  validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return min(p.Limit, MaxLimit)
}

// PaginatedResponse is a page of items plus the cursor for the next page.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// CursorData is the decoded form of a cursor: the key of the last item served.
type CursorData struct {
	Field string `json:"f"`
	Value string `json:"v"`
}

// EncodeCursor encodes cursor data to a URL-safe base64 string.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(raw)
}

// DecodeCursor decodes a cursor string. It returns ErrNoCursor for "".
func DecodeCursor(encoded string) (*CursorData, error) {
	if encoded == "" {
		return nil, ErrNoCursor
	}

	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData
	if err := json.Unmarshal(raw, &data); err != nil || data.Value == "" {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}

// Paginate returns the page of items following the item whose key matches
// the cursor, in the given order. A cursor naming no item is ErrInvalidCursor.
func Paginate[T any](items []T, req *PaginationRequest, field string, key func(T) string) (*PaginatedResponse[T], error) {
	start := 0

	cursor, err := DecodeCursor(req.Cursor)
	switch {
	case errors.Is(err, ErrNoCursor):
	case err != nil:
		return nil, err
	default:
		if cursor.Field != field {
			return nil, ErrInvalidCursor
		}

		start = -1
		for i, item := range items {
			if key(item) == cursor.Value {
				start = i + 1
				break
			}
		}

		if start < 0 {
			return nil, ErrInvalidCursor
		}
	}

	limit := req.GetLimit()
	end := min(start+limit, len(items))

	page := &PaginatedResponse[T]{
		Items:   append(make([]T, 0, end-start), items[start:end]...),
		HasMore: end < len(items),
	}

	if page.HasMore {
		page.NextCursor = EncodeCursor(&CursorData{Field: field, Value: key(items[end-1])})
	}

	return page, nil
}
