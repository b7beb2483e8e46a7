package mcpserver

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/hashicorp-forge/outline-mcp/pkg/outline"
)

// toolDef describes one tool. The tool name is the snake_case form of op.
type toolDef struct {
	op   string
	opts []mcp.ToolOption
	run  func(ctx context.Context, s *Server, args map[string]any) (string, error)
}

func (t toolDef) name() string {
	return strcase.ToSnake(t.op)
}

func (t toolDef) definition() mcp.Tool {
	opts := make([]mcp.ToolOption, 0, len(t.opts)+3)
	opts = append(opts, t.opts...)
	opts = append(opts,
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
	return mcp.NewTool(t.name(), opts...)
}

// handler adapts a tool to mcp-go. Every failure, whether bad arguments or a
// failed Outline call, is returned as an error result rather than a protocol
// error so the host can show the message.
func (s *Server) handler(t toolDef) server.ToolHandlerFunc {
	name := t.name()

	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := s.logger.With("tool", name, "request_id", uuid.NewString())
		logger.Info("tool called")

		text, err := t.run(ctx, s, req.GetArguments())
		if err != nil {
			logger.Error("tool failed", "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		logger.Debug("tool completed", "bytes", len(text))
		return mcp.NewToolResultText(text), nil
	}
}

// decodeArgs decodes tool arguments into out. Fields missing from args keep
// the values out already holds.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncKind(saturateInts),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// saturateInts converts JSON numbers bound for int fields, pinning values
// outside the int range to its ends instead of letting them wrap.
func saturateInts(from, to reflect.Kind, data any) (any, error) {
	if from != reflect.Float64 || to != reflect.Int {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	switch {
	case f >= math.MaxInt:
		return math.MaxInt, nil
	case f <= math.MinInt:
		return math.MinInt, nil
	}
	return int(f), nil
}

// invoke decodes args over the defaults in opts, announces the call, runs it
// and renders the result.
func invoke[O, R any](
	ctx context.Context,
	s *Server,
	args map[string]any,
	opts O,
	progress func(O) string,
	call func(context.Context, O) (R, error),
) (string, error) {
	if err := decodeArgs(args, &opts); err != nil {
		return "", err
	}

	s.notify(ctx, progress(opts))

	result, err := call(ctx, opts)
	if err != nil {
		return "", err
	}
	return outline.Render(result)
}

// Parameter options shared by several tools.
var (
	limitParam = mcp.WithNumber("limit",
		mcp.Description("Number of results to return (1-100)"),
		mcp.DefaultNumber(outline.DefaultLimit),
	)
	offsetParam = mcp.WithNumber("offset",
		mcp.Description("Pagination offset"),
		mcp.DefaultNumber(0),
	)
	sortParam = mcp.WithString("sort",
		mcp.Description("Field to sort by"),
		mcp.DefaultString(outline.DefaultSort),
	)
	directionParam = mcp.WithString("direction",
		mcp.Description("Sort direction, ASC or DESC"),
		mcp.DefaultString(outline.DefaultDirection),
	)
	collectionParam = mcp.WithString("collection_id",
		mcp.Description("Collection UUID to filter by"),
	)
	userParam = mcp.WithString("user_id",
		mcp.Description("User UUID to filter by"),
	)
	statusFilterParam = mcp.WithString("status_filter",
		mcp.Description("Status filter: draft, archived or published"),
	)
	dateFilterParam = mcp.WithString("date_filter",
		mcp.Description("Date filter: day, week, month or year"),
	)
)

func toolDefs() []toolDef {
	return []toolDef{
		{
			op: "SearchDocuments",
			opts: []mcp.ToolOption{
				mcp.WithDescription("Search for documents using keywords. Returns matching documents with context snippets and metadata."),
				mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
				collectionParam,
				mcp.WithString("user_id", mcp.Description("Only return documents edited by this user UUID")),
				statusFilterParam,
				dateFilterParam,
				limitParam,
				offsetParam,
			},
			run: func(ctx context.Context, s *Server, args map[string]any) (string, error) {
				return invoke(ctx, s, args,
					outline.SearchDocumentsOptions{Limit: outline.DefaultLimit},
					func(o outline.SearchDocumentsOptions) string { return "Searching documents for: " + o.Query },
					s.outline.SearchDocuments,
				)
			},
		},
		{
			op: "GetDocument",
			opts: []mcp.ToolOption{
				mcp.WithDescription("Retrieve a document by its ID, including its full text."),
				mcp.WithString("document_id", mcp.Required(), mcp.Description("Document UUID or urlId")),
				mcp.WithString("share_id", mcp.Description("Share UUID, when the document is reached through a share link")),
			},
			run: func(ctx context.Context, s *Server, args map[string]any) (string, error) {
				return invoke(ctx, s, args,
					outline.GetDocumentOptions{},
					func(o outline.GetDocumentOptions) string { return "Retrieving document: " + o.DocumentID },
					s.outline.GetDocument,
				)
			},
		},
		{
			op: "ListDocuments",
			opts: []mcp.ToolOption{
				mcp.WithDescription("List documents, optionally filtered by collection, user, parent document or template status."),
				collectionParam,
				userParam,
				mcp.WithString("parent_document_id", mcp.Description("Parent document UUID to filter by")),
				mcp.WithBoolean("template", mcp.Description("Only template documents when true, only regular documents when false")),
				limitParam,
				offsetParam,
				sortParam,
				directionParam,
			},
			run: func(ctx context.Context, s *Server, args map[string]any) (string, error) {
				return invoke(ctx, s, args,
					outline.ListDocumentsOptions{PageOptions: outline.DefaultPageOptions()},
					func(outline.ListDocumentsOptions) string { return "Listing documents" },
					s.outline.ListDocuments,
				)
			},
		},
		{
			op: "AnswerQuestion",
			opts: []mcp.ToolOption{
				mcp.WithDescription("Ask a natural language question and get an answer drawn from the knowledge base. Requires AI answers to be enabled on the workspace."),
				mcp.WithString("question", mcp.Required(), mcp.Description("The question to answer")),
				mcp.WithString("collection_id", mcp.Description("Collection UUID to search within")),
				mcp.WithString("document_id", mcp.Description("Document UUID to search within")),
				mcp.WithString("user_id", mcp.Description("Only use documents edited by this user UUID")),
				statusFilterParam,
				dateFilterParam,
			},
			run: func(ctx context.Context, s *Server, args map[string]any) (string, error) {
				return invoke(ctx, s, args,
					outline.AnswerQuestionOptions{},
					func(o outline.AnswerQuestionOptions) string { return "Answering question: " + o.Question },
					s.outline.AnswerQuestion,
				)
			},
		},
		{
			op: "ExportDocument",
			opts: []mcp.ToolOption{
				mcp.WithDescription("Export a document as markdown."),
				mcp.WithString("document_id", mcp.Required(), mcp.Description("Document UUID or urlId")),
			},
			run: exportDocument,
		},
		{
			op: "ListCollections",
			opts: []mcp.ToolOption{
				mcp.WithDescription("List the collections in the workspace."),
				mcp.WithString("query", mcp.Description("Filter collections by name")),
				limitParam,
				offsetParam,
				sortParam,
				directionParam,
			},
			run: func(ctx context.Context, s *Server, args map[string]any) (string, error) {
				return invoke(ctx, s, args,
					outline.ListCollectionsOptions{PageOptions: outline.DefaultPageOptions()},
					func(outline.ListCollectionsOptions) string { return "Listing collections" },
					s.outline.ListCollections,
				)
			},
		},
		{
			op: "GetCollection",
			opts: []mcp.ToolOption{
				mcp.WithDescription("Retrieve a collection by its ID."),
				mcp.WithString("collection_id", mcp.Required(), mcp.Description("Collection UUID")),
			},
			run: func(ctx context.Context, s *Server, args map[string]any) (string, error) {
				return invoke(ctx, s, args,
					outline.CollectionOptions{},
					func(o outline.CollectionOptions) string { return "Retrieving collection: " + o.CollectionID },
					s.outline.GetCollection,
				)
			},
		},
		{
			op: "GetCollectionDocuments",
			opts: []mcp.ToolOption{
				mcp.WithDescription("Retrieve the document tree of a collection."),
				mcp.WithString("collection_id", mcp.Required(), mcp.Description("Collection UUID")),
			},
			run: func(ctx context.Context, s *Server, args map[string]any) (string, error) {
				return invoke(ctx, s, args,
					outline.CollectionOptions{},
					func(o outline.CollectionOptions) string {
						return "Retrieving document structure for collection: " + o.CollectionID
					},
					s.outline.GetCollectionDocuments,
				)
			},
		},
		{
			op: "ListDraftDocuments",
			opts: []mcp.ToolOption{
				mcp.WithDescription("List the current user's draft documents."),
				collectionParam,
				dateFilterParam,
				limitParam,
				offsetParam,
				sortParam,
				directionParam,
			},
			run: func(ctx context.Context, s *Server, args map[string]any) (string, error) {
				return invoke(ctx, s, args,
					outline.ListDraftDocumentsOptions{PageOptions: outline.DefaultPageOptions()},
					func(outline.ListDraftDocumentsOptions) string { return "Listing draft documents" },
					s.outline.ListDraftDocuments,
				)
			},
		},
		{
			op: "ListRecentlyViewedDocuments",
			opts: []mcp.ToolOption{
				mcp.WithDescription("List documents the current user viewed recently."),
				limitParam,
				offsetParam,
				sortParam,
				directionParam,
			},
			run: func(ctx context.Context, s *Server, args map[string]any) (string, error) {
				return invoke(ctx, s, args,
					outline.ListRecentlyViewedOptions{PageOptions: outline.DefaultPageOptions()},
					func(outline.ListRecentlyViewedOptions) string { return "Listing recently viewed documents" },
					s.outline.ListRecentlyViewedDocuments,
				)
			},
		},
		{
			op: "GetAuthInfo",
			opts: []mcp.ToolOption{
				mcp.WithDescription("Show the user and workspace the configured API token acts for."),
			},
			run: func(ctx context.Context, s *Server, args map[string]any) (string, error) {
				return invoke(ctx, s, args,
					struct{}{},
					func(struct{}) string { return "Retrieving authentication info" },
					func(ctx context.Context, _ struct{}) (*outline.AuthInfo, error) {
						return s.outline.AuthInfo(ctx)
					},
				)
			},
		},
	}
}

// exportDocument returns the markdown as is; it is not JSON.
func exportDocument(ctx context.Context, s *Server, args map[string]any) (string, error) {
	var opts outline.ExportDocumentOptions
	if err := decodeArgs(args, &opts); err != nil {
		return "", err
	}

	s.notify(ctx, "Exporting document: "+opts.DocumentID)

	return s.outline.ExportDocument(ctx, opts)
}
