package outline

import "encoding/json"

// Reshaped records returned to callers. Field order here is the field order
// of the rendered JSON; fields are never omitted, absent values are null.

type SearchResult struct {
	ID           *string  `json:"id"`
	Title        *string  `json:"title"`
	URLID        *string  `json:"url_id"`
	Context      *string  `json:"context"`
	Ranking      *float64 `json:"ranking"`
	CollectionID *string  `json:"collection_id"`
	CreatedAt    *string  `json:"created_at"`
	UpdatedAt    *string  `json:"updated_at"`
	CreatedBy    *string  `json:"created_by"`
	UpdatedBy    *string  `json:"updated_by"`
}

type SearchResults struct {
	Query        string          `json:"query"`
	TotalResults int             `json:"total_results"`
	Results      []SearchResult  `json:"results"`
	Pagination   json.RawMessage `json:"pagination"`
}

type Document struct {
	ID               *string   `json:"id"`
	Title            *string   `json:"title"`
	Text             *string   `json:"text"`
	URLID            *string   `json:"url_id"`
	Emoji            *string   `json:"emoji"`
	CollectionID     *string   `json:"collection_id"`
	ParentDocumentID *string   `json:"parent_document_id"`
	Template         *bool     `json:"template"`
	Pinned           *bool     `json:"pinned"`
	FullWidth        *bool     `json:"full_width"`
	Revision         *int64    `json:"revision"`
	CreatedAt        *string   `json:"created_at"`
	UpdatedAt        *string   `json:"updated_at"`
	PublishedAt      *string   `json:"published_at"`
	CreatedBy        *string   `json:"created_by"`
	UpdatedBy        *string   `json:"updated_by"`
	Collaborators    []*string `json:"collaborators"`
}

type DocumentSummary struct {
	ID               *string `json:"id"`
	Title            *string `json:"title"`
	URLID            *string `json:"url_id"`
	Emoji            *string `json:"emoji"`
	CollectionID     *string `json:"collection_id"`
	ParentDocumentID *string `json:"parent_document_id"`
	Template         *bool   `json:"template"`
	Pinned           *bool   `json:"pinned"`
	Revision         *int64  `json:"revision"`
	CreatedAt        *string `json:"created_at"`
	UpdatedAt        *string `json:"updated_at"`
	PublishedAt      *string `json:"published_at"`
	CreatedBy        *string `json:"created_by"`
	UpdatedBy        *string `json:"updated_by"`
}

type DocumentList struct {
	TotalDocuments int               `json:"total_documents"`
	Documents      []DocumentSummary `json:"documents"`
	Pagination     json.RawMessage   `json:"pagination"`
}

type DraftDocument struct {
	ID               *string `json:"id"`
	Title            *string `json:"title"`
	URLID            *string `json:"url_id"`
	Emoji            *string `json:"emoji"`
	CollectionID     *string `json:"collection_id"`
	ParentDocumentID *string `json:"parent_document_id"`
	Template         *bool   `json:"template"`
	Revision         *int64  `json:"revision"`
	CreatedAt        *string `json:"created_at"`
	UpdatedAt        *string `json:"updated_at"`
	CreatedBy        *string `json:"created_by"`
	UpdatedBy        *string `json:"updated_by"`
}

type DraftList struct {
	TotalDrafts    int             `json:"total_drafts"`
	DraftDocuments []DraftDocument `json:"draft_documents"`
	Pagination     json.RawMessage `json:"pagination"`
}

type ViewedDocument struct {
	ID               *string `json:"id"`
	Title            *string `json:"title"`
	URLID            *string `json:"url_id"`
	Emoji            *string `json:"emoji"`
	CollectionID     *string `json:"collection_id"`
	ParentDocumentID *string `json:"parent_document_id"`
	Template         *bool   `json:"template"`
	Revision         *int64  `json:"revision"`
	CreatedAt        *string `json:"created_at"`
	UpdatedAt        *string `json:"updated_at"`
	PublishedAt      *string `json:"published_at"`
	CreatedBy        *string `json:"created_by"`
	UpdatedBy        *string `json:"updated_by"`
}

type ViewedList struct {
	TotalViewed             int              `json:"total_viewed"`
	RecentlyViewedDocuments []ViewedDocument `json:"recently_viewed_documents"`
	Pagination              json.RawMessage  `json:"pagination"`
}

type SupportingDocument struct {
	ID           *string `json:"id"`
	Title        *string `json:"title"`
	URLID        *string `json:"url_id"`
	CollectionID *string `json:"collection_id"`
	CreatedAt    *string `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
}

type SearchMetadata struct {
	ID        *string `json:"id"`
	Query     *string `json:"query"`
	Source    *string `json:"source"`
	CreatedAt *string `json:"created_at"`
}

type Answer struct {
	Question            string               `json:"question"`
	Answer              *string              `json:"answer"`
	SupportingDocuments []SupportingDocument `json:"supporting_documents"`
	SearchMetadata      SearchMetadata       `json:"search_metadata"`
}

type CollectionSummary struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	URLID       *string `json:"url_id"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	Permission  *string `json:"permission"`
	Sharing     *bool   `json:"sharing"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

type CollectionList struct {
	TotalCollections int                 `json:"total_collections"`
	Collections      []CollectionSummary `json:"collections"`
	Pagination       json.RawMessage     `json:"pagination"`
}

type Collection struct {
	ID          *string         `json:"id"`
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	URLID       *string         `json:"url_id"`
	Color       *string         `json:"color"`
	Icon        *string         `json:"icon"`
	Permission  *string         `json:"permission"`
	Sharing     *bool           `json:"sharing"`
	Sort        json.RawMessage `json:"sort"`
	Index       *string         `json:"index"`
	CreatedAt   *string         `json:"created_at"`
	UpdatedAt   *string         `json:"updated_at"`
	ArchivedAt  *string         `json:"archived_at"`
	DeletedAt   *string         `json:"deleted_at"`
}

type CollectionDocuments struct {
	CollectionID string `json:"collection_id"`
	// DocumentTree is the navigation tree exactly as Outline returned it.
	DocumentTree json.RawMessage `json:"document_tree"`
}

type AuthUser struct {
	ID        *string `json:"id"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatar_url"`
	IsAdmin   *bool   `json:"is_admin"`
}

type AuthTeam struct {
	ID        *string `json:"id"`
	Name      *string `json:"name"`
	URL       *string `json:"url"`
	Subdomain *string `json:"subdomain"`
}

type AuthInfo struct {
	User *AuthUser `json:"user"`
	Team *AuthTeam `json:"team"`
}
