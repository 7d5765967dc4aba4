package dialog

import (
	"context"
	"fmt"

	"github.com/goliatone/go-datefield/internal/openapi"
	"github.com/goliatone/go-datefield/pkg/model"
)

// FromOpenAPI builds a dialog from the request body of operationID in the
// OpenAPI document raw. The callback id is the operation id.
func FromOpenAPI(ctx context.Context, raw []byte, operationID string) (model.Dialog, error) {
	form, err := openapi.New(openapi.Options{}).Form(ctx, raw, operationID)
	if err != nil {
		return model.Dialog{}, fmt.Errorf("dialog: %w", err)
	}

	d := Sanitize(model.Dialog{
		CallbackID:       form.OperationID,
		Title:            form.Title,
		IntroductionText: form.Description,
		Elements:         form.Elements,
	})
	if err := Check(d); err != nil {
		return model.Dialog{}, fmt.Errorf("dialog: operation %s: %w", operationID, err)
	}
	return d, nil
}
