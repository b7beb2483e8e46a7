package outline

import (
	"context"
	"fmt"
)

// ===================================================================
// Collection operations
// ===================================================================

// ListCollections lists collections, optionally filtered by name.
func (c *Client) ListCollections(ctx context.Context, opts ListCollectionsOptions) (*CollectionList, error) {
	resp, err := c.Execute(ctx, "collections.list", listCollectionsRequest{
		pageRequest: opts.request(),
		Query:       opts.Query,
	})
	if err != nil {
		return nil, err
	}

	var data []*apiCollection
	if err := decodeLenient(resp.Data, &data); err != nil {
		return nil, c.decodeError("collections.list", err)
	}

	collections := make([]CollectionSummary, 0, len(data))
	for _, col := range data {
		collections = append(collections, reshapeCollectionSummary(col))
	}

	return &CollectionList{
		TotalCollections: len(collections),
		Collections:      collections,
		Pagination:       passthrough(resp.Pagination, emptyObject),
	}, nil
}

// GetCollection retrieves a single collection.
func (c *Client) GetCollection(ctx context.Context, opts CollectionOptions) (*Collection, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid collection options: %w", err)
	}

	resp, err := c.Execute(ctx, "collections.info", infoRequest{ID: opts.CollectionID})
	if err != nil {
		return nil, err
	}

	var data apiCollection
	if err := decodeLenient(resp.Data, &data); err != nil {
		return nil, c.decodeError("collections.info", err)
	}

	col := reshapeCollection(&data)
	return &col, nil
}

// GetCollectionDocuments retrieves a collection's navigation tree. The tree
// is passed through untouched.
func (c *Client) GetCollectionDocuments(ctx context.Context, opts CollectionOptions) (*CollectionDocuments, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid collection options: %w", err)
	}

	resp, err := c.Execute(ctx, "collections.documents", infoRequest{ID: opts.CollectionID})
	if err != nil {
		return nil, err
	}

	return &CollectionDocuments{
		CollectionID: opts.CollectionID,
		DocumentTree: passthrough(resp.Data, emptyList),
	}, nil
}
