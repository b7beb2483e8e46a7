package outline

import (
	"context"
	"encoding/json"
	"fmt"
)

// ===================================================================
// Document operations
// ===================================================================
// All methods call the documents.* endpoints through Execute and reshape the
// envelope's data. Remote failures are returned unchanged.

// SearchDocuments runs a keyword search across documents.
func (c *Client) SearchDocuments(ctx context.Context, opts SearchDocumentsOptions) (*SearchResults, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search options: %w", err)
	}

	resp, err := c.Execute(ctx, "documents.search", searchRequest{
		Query:        opts.Query,
		Limit:        ClampLimit(opts.Limit),
		Offset:       opts.Offset,
		CollectionID: opts.CollectionID,
		UserID:       opts.UserID,
		StatusFilter: opts.StatusFilter,
		DateFilter:   opts.DateFilter,
	})
	if err != nil {
		return nil, err
	}

	var data []*apiSearchResult
	if err := decodeLenient(resp.Data, &data); err != nil {
		return nil, c.decodeError("documents.search", err)
	}

	results := make([]SearchResult, 0, len(data))
	for _, r := range data {
		results = append(results, reshapeSearchResult(r))
	}

	return &SearchResults{
		Query:        opts.Query,
		TotalResults: len(results),
		Results:      results,
		Pagination:   passthrough(resp.Pagination, emptyObject),
	}, nil
}

// GetDocument retrieves a single document, including its text.
func (c *Client) GetDocument(ctx context.Context, opts GetDocumentOptions) (*Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document options: %w", err)
	}

	resp, err := c.Execute(ctx, "documents.info", infoRequest{
		ID:      opts.DocumentID,
		ShareID: opts.ShareID,
	})
	if err != nil {
		return nil, err
	}

	var data apiDocument
	if err := decodeLenient(resp.Data, &data); err != nil {
		return nil, c.decodeError("documents.info", err)
	}

	doc := reshapeDocument(&data)
	return &doc, nil
}

// ListDocuments lists documents matching the optional filters.
func (c *Client) ListDocuments(ctx context.Context, opts ListDocumentsOptions) (*DocumentList, error) {
	resp, err := c.Execute(ctx, "documents.list", listDocumentsRequest{
		pageRequest:      opts.request(),
		CollectionID:     opts.CollectionID,
		UserID:           opts.UserID,
		ParentDocumentID: opts.ParentDocumentID,
		Template:         opts.Template,
	})
	if err != nil {
		return nil, err
	}

	var data []*apiDocument
	if err := decodeLenient(resp.Data, &data); err != nil {
		return nil, c.decodeError("documents.list", err)
	}

	docs := make([]DocumentSummary, 0, len(data))
	for _, d := range data {
		docs = append(docs, reshapeDocumentSummary(d))
	}

	return &DocumentList{
		TotalDocuments: len(docs),
		Documents:      docs,
		Pagination:     passthrough(resp.Pagination, emptyObject),
	}, nil
}

// AnswerQuestion asks Outline's AI answers feature a natural language
// question. The workspace must have AI answers enabled.
func (c *Client) AnswerQuestion(ctx context.Context, opts AnswerQuestionOptions) (*Answer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid question options: %w", err)
	}

	resp, err := c.Execute(ctx, "documents.answerQuestion", answerQuestionRequest{
		Query:        opts.Question,
		CollectionID: opts.CollectionID,
		DocumentID:   opts.DocumentID,
		UserID:       opts.UserID,
		StatusFilter: opts.StatusFilter,
		DateFilter:   opts.DateFilter,
	})
	if err != nil {
		return nil, err
	}

	// search and documents sit next to data at the top level of the response.
	var data apiAnswer
	if err := decodeLenient(resp.Raw, &data); err != nil {
		return nil, c.decodeError("documents.answerQuestion", err)
	}
	if data.Search == nil && data.Documents == nil {
		if err := decodeLenient(resp.Data, &data); err != nil {
			return nil, c.decodeError("documents.answerQuestion", err)
		}
	}

	answer := reshapeAnswer(opts.Question, &data)
	return &answer, nil
}

// ExportDocument returns the document's markdown exactly as Outline sent it.
func (c *Client) ExportDocument(ctx context.Context, opts ExportDocumentOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", fmt.Errorf("invalid export options: %w", err)
	}

	resp, err := c.Execute(ctx, "documents.export", infoRequest{ID: opts.DocumentID})
	if err != nil {
		return "", err
	}

	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return "", nil
	}
	var markdown string
	if err := json.Unmarshal(resp.Data, &markdown); err != nil {
		// Not a string; hand back the JSON text rather than dropping it.
		return string(resp.Data), nil
	}
	return markdown, nil
}

// ListDraftDocuments lists the current user's drafts.
func (c *Client) ListDraftDocuments(ctx context.Context, opts ListDraftDocumentsOptions) (*DraftList, error) {
	resp, err := c.Execute(ctx, "documents.drafts", listDraftsRequest{
		pageRequest:  opts.request(),
		CollectionID: opts.CollectionID,
		DateFilter:   opts.DateFilter,
	})
	if err != nil {
		return nil, err
	}

	var data []*apiDocument
	if err := decodeLenient(resp.Data, &data); err != nil {
		return nil, c.decodeError("documents.drafts", err)
	}

	drafts := make([]DraftDocument, 0, len(data))
	for _, d := range data {
		drafts = append(drafts, reshapeDraftDocument(d))
	}

	return &DraftList{
		TotalDrafts:    len(drafts),
		DraftDocuments: drafts,
		Pagination:     passthrough(resp.Pagination, emptyObject),
	}, nil
}

// ListRecentlyViewedDocuments lists documents the current user viewed recently.
func (c *Client) ListRecentlyViewedDocuments(ctx context.Context, opts ListRecentlyViewedOptions) (*ViewedList, error) {
	resp, err := c.Execute(ctx, "documents.viewed", opts.request())
	if err != nil {
		return nil, err
	}

	var data []*apiDocument
	if err := decodeLenient(resp.Data, &data); err != nil {
		return nil, c.decodeError("documents.viewed", err)
	}

	viewed := make([]ViewedDocument, 0, len(data))
	for _, d := range data {
		viewed = append(viewed, reshapeViewedDocument(d))
	}

	return &ViewedList{
		TotalViewed:             len(viewed),
		RecentlyViewedDocuments: viewed,
		Pagination:              passthrough(resp.Pagination, emptyObject),
	}, nil
}

func (c *Client) decodeError(endpoint string, err error) error {
	c.logger.Error("error decoding Outline API data", "endpoint", endpoint, "error", err)
	return &RemoteCallError{Endpoint: endpoint, Msg: msgDecodeFailed, Err: err}
}
