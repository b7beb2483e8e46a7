package outline

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultLimit     = 25
	MinLimit         = 1
	MaxLimit         = 100
	DefaultSort      = "updatedAt"
	DefaultDirection = "DESC"
)

// ClampLimit forces a page size into [MinLimit, MaxLimit].
func ClampLimit(limit int) int {
	return min(max(limit, MinLimit), MaxLimit)
}

// PageOptions are the paging and ordering parameters shared by list
// operations. Offset is passed through as given, negative values included.
type PageOptions struct {
	Limit     int    `mapstructure:"limit" json:"limit"`
	Offset    int    `mapstructure:"offset" json:"offset"`
	Sort      string `mapstructure:"sort" json:"sort"`
	Direction string `mapstructure:"direction" json:"direction"`
}

// DefaultPageOptions returns 25 results from offset 0, most recently updated first.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		Limit:     DefaultLimit,
		Sort:      DefaultSort,
		Direction: DefaultDirection,
	}
}

func (o PageOptions) request() pageRequest {
	return pageRequest{
		Limit:     ClampLimit(o.Limit),
		Offset:    o.Offset,
		Sort:      o.Sort,
		Direction: o.Direction,
	}
}

type SearchDocumentsOptions struct {
	Query        string `mapstructure:"query" json:"query"`
	CollectionID string `mapstructure:"collection_id" json:"collection_id"`
	// UserID limits results to documents edited by this user.
	UserID string `mapstructure:"user_id" json:"user_id"`
	// StatusFilter is one of draft, archived, published.
	StatusFilter string `mapstructure:"status_filter" json:"status_filter"`
	// DateFilter is one of day, week, month, year.
	DateFilter string `mapstructure:"date_filter" json:"date_filter"`
	Limit      int    `mapstructure:"limit" json:"limit"`
	Offset     int    `mapstructure:"offset" json:"offset"`
}

func (o *SearchDocumentsOptions) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Query, validation.Required),
	)
}

type GetDocumentOptions struct {
	// DocumentID is a document UUID or urlId.
	DocumentID string `mapstructure:"document_id" json:"document_id"`
	// ShareID is set when the document is reached through a share link.
	ShareID string `mapstructure:"share_id" json:"share_id"`
}

func (o *GetDocumentOptions) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.DocumentID, validation.Required),
	)
}

type ListDocumentsOptions struct {
	PageOptions      `mapstructure:",squash"`
	CollectionID     string `mapstructure:"collection_id" json:"collection_id"`
	UserID           string `mapstructure:"user_id" json:"user_id"`
	ParentDocumentID string `mapstructure:"parent_document_id" json:"parent_document_id"`
	// Template filters on template documents when set, including to false.
	Template *bool `mapstructure:"template" json:"template"`
}

type AnswerQuestionOptions struct {
	Question     string `mapstructure:"question" json:"question"`
	CollectionID string `mapstructure:"collection_id" json:"collection_id"`
	DocumentID   string `mapstructure:"document_id" json:"document_id"`
	UserID       string `mapstructure:"user_id" json:"user_id"`
	StatusFilter string `mapstructure:"status_filter" json:"status_filter"`
	DateFilter   string `mapstructure:"date_filter" json:"date_filter"`
}

func (o *AnswerQuestionOptions) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Question, validation.Required),
	)
}

type ExportDocumentOptions struct {
	DocumentID string `mapstructure:"document_id" json:"document_id"`
}

func (o *ExportDocumentOptions) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.DocumentID, validation.Required),
	)
}

type ListCollectionsOptions struct {
	PageOptions `mapstructure:",squash"`
	// Query filters collections by name.
	Query string `mapstructure:"query" json:"query"`
}

type CollectionOptions struct {
	CollectionID string `mapstructure:"collection_id" json:"collection_id"`
}

func (o *CollectionOptions) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.CollectionID, validation.Required),
	)
}

type ListDraftDocumentsOptions struct {
	PageOptions  `mapstructure:",squash"`
	CollectionID string `mapstructure:"collection_id" json:"collection_id"`
	DateFilter   string `mapstructure:"date_filter" json:"date_filter"`
}

type ListRecentlyViewedOptions struct {
	PageOptions `mapstructure:",squash"`
}

// ===================================================================
// Request bodies
// ===================================================================
// Optional filters use omitempty: Outline treats a missing key as "unset",
// so empty values must not be sent at all.

type pageRequest struct {
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
	Sort      string `json:"sort"`
	Direction string `json:"direction"`
}

type searchRequest struct {
	Query        string `json:"query"`
	Limit        int    `json:"limit"`
	Offset       int    `json:"offset"`
	CollectionID string `json:"collectionId,omitempty"`
	UserID       string `json:"userId,omitempty"`
	StatusFilter string `json:"statusFilter,omitempty"`
	DateFilter   string `json:"dateFilter,omitempty"`
}

type infoRequest struct {
	ID      string `json:"id"`
	ShareID string `json:"shareId,omitempty"`
}

type listDocumentsRequest struct {
	pageRequest
	CollectionID     string `json:"collectionId,omitempty"`
	UserID           string `json:"userId,omitempty"`
	ParentDocumentID string `json:"parentDocumentId,omitempty"`
	Template         *bool  `json:"template,omitempty"`
}

type answerQuestionRequest struct {
	Query        string `json:"query"`
	CollectionID string `json:"collectionId,omitempty"`
	DocumentID   string `json:"documentId,omitempty"`
	UserID       string `json:"userId,omitempty"`
	StatusFilter string `json:"statusFilter,omitempty"`
	DateFilter   string `json:"dateFilter,omitempty"`
}

type listCollectionsRequest struct {
	pageRequest
	Query string `json:"query,omitempty"`
}

type listDraftsRequest struct {
	pageRequest
	CollectionID string `json:"collectionId,omitempty"`
	DateFilter   string `json:"dateFilter,omitempty"`
}
