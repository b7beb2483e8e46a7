package outline

import "encoding/json"

var (
	emptyObject = json.RawMessage(`{}`)
	emptyList   = json.RawMessage(`[]`)
)

// passthrough returns raw unchanged, or fallback when the key was absent.
// An explicit null is kept.
func passthrough(raw json.RawMessage, fallback json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return fallback
	}
	return raw
}

func orEmptyDocument(d *apiDocument) *apiDocument {
	if d == nil {
		return &apiDocument{}
	}
	return d
}

func reshapeSearchResult(r *apiSearchResult) SearchResult {
	if r == nil {
		r = &apiSearchResult{}
	}
	doc := orEmptyDocument(r.Document)

	return SearchResult{
		ID:           doc.ID,
		Title:        doc.Title,
		URLID:        doc.URLID,
		Context:      r.snippet(),
		Ranking:      r.Ranking,
		CollectionID: doc.CollectionID,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
		CreatedBy:    doc.CreatedBy.displayName(),
		UpdatedBy:    doc.UpdatedBy.displayName(),
	}
}

func reshapeDocument(d *apiDocument) Document {
	d = orEmptyDocument(d)

	collaborators := make([]*string, 0, len(d.Collaborators))
	for _, c := range d.Collaborators {
		collaborators = append(collaborators, c.displayName())
	}

	return Document{
		ID:               d.ID,
		Title:            d.Title,
		Text:             d.Text,
		URLID:            d.URLID,
		Emoji:            d.Emoji,
		CollectionID:     d.CollectionID,
		ParentDocumentID: d.ParentDocumentID,
		Template:         d.Template,
		Pinned:           d.Pinned,
		FullWidth:        d.FullWidth,
		Revision:         d.Revision,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
		PublishedAt:      d.PublishedAt,
		CreatedBy:        d.CreatedBy.displayName(),
		UpdatedBy:        d.UpdatedBy.displayName(),
		Collaborators:    collaborators,
	}
}

func reshapeDocumentSummary(d *apiDocument) DocumentSummary {
	d = orEmptyDocument(d)
	return DocumentSummary{
		ID:               d.ID,
		Title:            d.Title,
		URLID:            d.URLID,
		Emoji:            d.Emoji,
		CollectionID:     d.CollectionID,
		ParentDocumentID: d.ParentDocumentID,
		Template:         d.Template,
		Pinned:           d.Pinned,
		Revision:         d.Revision,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
		PublishedAt:      d.PublishedAt,
		CreatedBy:        d.CreatedBy.displayName(),
		UpdatedBy:        d.UpdatedBy.displayName(),
	}
}

func reshapeDraftDocument(d *apiDocument) DraftDocument {
	d = orEmptyDocument(d)
	return DraftDocument{
		ID:               d.ID,
		Title:            d.Title,
		URLID:            d.URLID,
		Emoji:            d.Emoji,
		CollectionID:     d.CollectionID,
		ParentDocumentID: d.ParentDocumentID,
		Template:         d.Template,
		Revision:         d.Revision,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
		CreatedBy:        d.CreatedBy.displayName(),
		UpdatedBy:        d.UpdatedBy.displayName(),
	}
}

func reshapeViewedDocument(d *apiDocument) ViewedDocument {
	d = orEmptyDocument(d)
	return ViewedDocument{
		ID:               d.ID,
		Title:            d.Title,
		URLID:            d.URLID,
		Emoji:            d.Emoji,
		CollectionID:     d.CollectionID,
		ParentDocumentID: d.ParentDocumentID,
		Template:         d.Template,
		Revision:         d.Revision,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
		PublishedAt:      d.PublishedAt,
		CreatedBy:        d.CreatedBy.displayName(),
		UpdatedBy:        d.UpdatedBy.displayName(),
	}
}

func reshapeSupportingDocument(d *apiDocument) SupportingDocument {
	d = orEmptyDocument(d)
	return SupportingDocument{
		ID:           d.ID,
		Title:        d.Title,
		URLID:        d.URLID,
		CollectionID: d.CollectionID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func reshapeCollectionSummary(c *apiCollection) CollectionSummary {
	if c == nil {
		c = &apiCollection{}
	}
	return CollectionSummary{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		URLID:       c.URLID,
		Color:       c.Color,
		Icon:        c.Icon,
		Permission:  c.Permission,
		Sharing:     c.Sharing,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func reshapeCollection(c *apiCollection) Collection {
	if c == nil {
		c = &apiCollection{}
	}
	return Collection{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		URLID:       c.URLID,
		Color:       c.Color,
		Icon:        c.Icon,
		Permission:  c.Permission,
		Sharing:     c.Sharing,
		Sort:        c.Sort,
		Index:       c.Index,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		ArchivedAt:  c.ArchivedAt,
		DeletedAt:   c.DeletedAt,
	}
}

func reshapeAnswer(question string, a *apiAnswer) Answer {
	search := a.Search
	if search == nil {
		search = &apiSearch{}
	}

	docs := make([]SupportingDocument, 0, len(a.Documents))
	for _, d := range a.Documents {
		docs = append(docs, reshapeSupportingDocument(d))
	}

	return Answer{
		Question:            question,
		Answer:              search.Answer,
		SupportingDocuments: docs,
		SearchMetadata: SearchMetadata{
			ID:        search.ID,
			Query:     search.Query,
			Source:    search.Source,
			CreatedAt: search.CreatedAt,
		},
	}
}

func reshapeAuthInfo(a *apiAuthInfo) AuthInfo {
	var info AuthInfo
	if u := a.User; u != nil {
		info.User = &AuthUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			AvatarURL: u.AvatarURL,
			IsAdmin:   u.IsAdmin,
		}
	}
	if t := a.Team; t != nil {
		info.Team = &AuthTeam{
			ID:        t.ID,
			Name:      t.Name,
			URL:       t.URL,
			Subdomain: t.Subdomain,
		}
	}
	return info
}
