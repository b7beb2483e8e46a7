package outline

import "encoding/json"

// Upstream shapes as Outline returns them. Every field is optional: a value
// that is missing, null or of an unexpected type decodes to nil.

type apiUser struct {
	ID        *string `json:"id"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatarUrl"`
	IsAdmin   *bool   `json:"isAdmin"`
}

// displayName reduces a nested user object to its name.
func (u *apiUser) displayName() *string {
	if u == nil {
		return nil
	}
	return u.Name
}

type apiTeam struct {
	ID        *string `json:"id"`
	Name      *string `json:"name"`
	URL       *string `json:"url"`
	Subdomain *string `json:"subdomain"`
}

type apiDocument struct {
	ID               *string    `json:"id"`
	Title            *string    `json:"title"`
	Text             *string    `json:"text"`
	URLID            *string    `json:"urlId"`
	Emoji            *string    `json:"emoji"`
	CollectionID     *string    `json:"collectionId"`
	ParentDocumentID *string    `json:"parentDocumentId"`
	Template         *bool      `json:"template"`
	Pinned           *bool      `json:"pinned"`
	FullWidth        *bool      `json:"fullWidth"`
	Revision         *int64     `json:"revision"`
	CreatedAt        *string    `json:"createdAt"`
	UpdatedAt        *string    `json:"updatedAt"`
	PublishedAt      *string    `json:"publishedAt"`
	CreatedBy        *apiUser   `json:"createdBy"`
	UpdatedBy        *apiUser   `json:"updatedBy"`
	Collaborators    []*apiUser `json:"collaborators"`
}

type apiSearchResult struct {
	// Context stays raw so an absent snippet can be told apart from null.
	Context  json.RawMessage `json:"context"`
	Ranking  *float64        `json:"ranking"`
	Document *apiDocument    `json:"document"`
}

// snippet is the highlighted context: empty when Outline left it out, nil
// when it was null or not a string.
func (r *apiSearchResult) snippet() *string {
	if len(r.Context) == 0 {
		empty := ""
		return &empty
	}
	var snippet *string
	if err := json.Unmarshal(r.Context, &snippet); err != nil {
		return nil
	}
	return snippet
}

type apiSearch struct {
	ID        *string `json:"id"`
	Query     *string `json:"query"`
	Answer    *string `json:"answer"`
	Source    *string `json:"source"`
	CreatedAt *string `json:"createdAt"`
}

type apiAnswer struct {
	Search    *apiSearch     `json:"search"`
	Documents []*apiDocument `json:"documents"`
}

type apiCollection struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	URLID       *string `json:"urlId"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	Permission  *string `json:"permission"`
	Sharing     *bool   `json:"sharing"`
	// Sort is an object such as {"field": "title", "direction": "asc"}.
	Sort       json.RawMessage `json:"sort"`
	Index      *string         `json:"index"`
	CreatedAt  *string         `json:"createdAt"`
	UpdatedAt  *string         `json:"updatedAt"`
	ArchivedAt *string         `json:"archivedAt"`
	DeletedAt  *string         `json:"deletedAt"`
}

type apiAuthInfo struct {
	User *apiUser `json:"user"`
	Team *apiTeam `json:"team"`
}
