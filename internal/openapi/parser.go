package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-datefield/pkg/model"
)

var (
	ErrEmptyDocument     = errors.New("openapi: document payload is empty")
	ErrOperationNotFound = errors.New("openapi: operation not found")
	ErrNoRequestBody     = errors.New("openapi: operation has no object request body")
)

// ExtensionKey is the schema extension holding datetime configuration.
const ExtensionKey = "x-datefield"

// Form is an operation's request body reduced to dialog elements.
type Form struct {
	OperationID string
	Method      string
	Path        string
	Title       string
	Description string
	Elements    []model.Element
	// Skipped lists properties with no element equivalent (objects, arrays).
	Skipped []string
}

// Options configures the parser.
type Options struct {
	// Validate runs the kin-openapi document validation before extraction.
	Validate bool
}

// Parser extracts Forms from OpenAPI documents.
type Parser struct {
	options Options
}

// New constructs a Parser.
func New(options Options) *Parser {
	return &Parser{options: options}
}

// Forms converts every operation with an object request body, keyed by
// operationId. Operations without an id are keyed "method:path".
func (p *Parser) Forms(ctx context.Context, raw []byte) (map[string]Form, error) {
	doc, err := p.load(ctx, raw)
	if err != nil {
		return nil, err
	}

	forms := make(map[string]Form)
	if doc.Paths == nil {
		return forms, nil
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			form, err := buildForm(method, path, operation)
			if err != nil {
				continue
			}
			forms[form.OperationID] = form
		}
	}
	return forms, nil
}

// Form converts the operation identified by operationID.
func (p *Parser) Form(ctx context.Context, raw []byte, operationID string) (Form, error) {
	doc, err := p.load(ctx, raw)
	if err != nil {
		return Form{}, err
	}
	if doc.Paths != nil {
		for path, item := range doc.Paths.Map() {
			if item == nil {
				continue
			}
			for method, operation := range item.Operations() {
				if operationKey(method, path, operation) == operationID {
					return buildForm(method, path, operation)
				}
			}
		}
	}
	return Form{}, fmt.Errorf("%w: %s", ErrOperationNotFound, operationID)
}

func (p *Parser) load(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptyDocument
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if p.options.Validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}
	return doc, nil
}

func operationKey(method, path string, operation *openapi3.Operation) string {
	if operation != nil && operation.OperationID != "" {
		return operation.OperationID
	}
	return strings.ToLower(method) + ":" + path
}

func buildForm(method, path string, operation *openapi3.Operation) (Form, error) {
	schema := requestSchema(operation.RequestBody)
	if schema == nil || !schema.Type.Is(openapi3.TypeObject) {
		return Form{}, ErrNoRequestBody
	}

	form := Form{
		OperationID: operationKey(method, path, operation),
		Method:      strings.ToUpper(method),
		Path:        path,
		Title:       operation.Summary,
		Description: operation.Description,
	}
	if form.Title == "" {
		form.Title = humanize(form.OperationID)
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			form.Skipped = append(form.Skipped, name)
			continue
		}
		el, ok := convertProperty(name, ref.Value)
		if !ok {
			form.Skipped = append(form.Skipped, name)
			continue
		}
		_, isRequired := required[name]
		el.Optional = !isRequired
		form.Elements = append(form.Elements, el)
	}
	return form, nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// fieldExtension is the decoded x-datefield extension. The embedded config
// fields are promoted so the extension object stays flat.
type fieldExtension struct {
	model.DateTimeConfig
	Widget      string `json:"widget,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	MinDate     string `json:"min_date,omitempty"`
	MaxDate     string `json:"max_date,omitempty"`
}

func convertProperty(name string, src *openapi3.Schema) (model.Element, bool) {
	ext, err := decodeExtension(src.Extensions)
	if err != nil {
		return model.Element{}, false
	}

	el := model.Element{
		Name:        name,
		DisplayName: src.Title,
		HelpText:    src.Description,
		Placeholder: ext.Placeholder,
		MinLength:   int(src.MinLength),
	}
	if el.DisplayName == "" {
		el.DisplayName = humanize(name)
	}
	if src.MaxLength != nil {
		el.MaxLength = int(*src.MaxLength)
	}
	if src.Default != nil {
		el.Default = fmt.Sprint(src.Default)
	}

	switch {
	case src.Type.Is(openapi3.TypeBoolean):
		el.Type = model.ElementTypeBool
	case src.Type.Is(openapi3.TypeInteger), src.Type.Is(openapi3.TypeNumber):
		el.Type = model.ElementTypeText
		el.Subtype = model.SubtypeNumber
	case src.Type.Is(openapi3.TypeString):
		convertString(&el, src, ext)
	default:
		return model.Element{}, false
	}
	return el, true
}

func convertString(el *model.Element, src *openapi3.Schema, ext fieldExtension) {
	if len(src.Enum) > 0 {
		el.Type = model.ElementTypeSelect
		if ext.Widget == string(model.ElementTypeRadio) {
			el.Type = model.ElementTypeRadio
		}
		for _, value := range src.Enum {
			text := fmt.Sprint(value)
			el.Options = append(el.Options, model.Option{Text: text, Value: text})
		}
		return
	}

	switch src.Format {
	case "date", "date-time":
		el.Type = model.ElementTypeDate
		if src.Format == "date-time" {
			el.Type = model.ElementTypeDateTime
		}
		el.MinDate = ext.MinDate
		el.MaxDate = ext.MaxDate
		if ext.DateTimeConfig != (model.DateTimeConfig{}) {
			cfg := ext.DateTimeConfig
			el.DateTimeConfig = &cfg
		}
		return
	case "email":
		el.Subtype = model.SubtypeEmail
	case "uri", "url":
		el.Subtype = model.SubtypeURL
	case "password":
		el.Subtype = model.SubtypePassword
	}

	el.Type = model.ElementTypeText
	if ext.Widget == string(model.ElementTypeTextarea) {
		el.Type = model.ElementTypeTextarea
	}
}

func decodeExtension(extensions map[string]any) (fieldExtension, error) {
	var ext fieldExtension
	raw, ok := extensions[ExtensionKey]
	if !ok || raw == nil {
		return ext, nil
	}
	// kin-openapi leaves extension values as decoded JSON.
	data, err := json.Marshal(raw)
	if err != nil {
		return ext, fmt.Errorf("openapi: encode %s: %w", ExtensionKey, err)
	}
	if err := json.Unmarshal(data, &ext); err != nil {
		return ext, fmt.Errorf("openapi: decode %s: %w", ExtensionKey, err)
	}
	return ext, nil
}
