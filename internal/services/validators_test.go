package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

func TestValidators(t *testing.T) {
	painting := models.CreationFields{
		Title:       "Sky",
		ProductType: "mug",
		ImageData:   "AAA",
		CanvasSize:  &models.CanvasSize{Width: 800, Height: 600},
	}
	arrangement := models.CreationFields{
		Title:           "Spring",
		ArrangementData: json.RawMessage(`{"flowers":[]}`),
		ImageSnapshot:   "BBB",
	}
	bracelet := models.CreationFields{
		Title:         "Stars",
		BraceletData:  json.RawMessage(`{"charms":[]}`),
		ImageSnapshot: "CCC",
	}

	tests := []struct {
		name      string
		kind      models.Kind
		mutate    func(f *models.CreationFields)
		base      models.CreationFields
		wantField string
	}{
		{name: "painting ok", kind: models.KindPainting, base: painting},
		{name: "painting blank title", kind: models.KindPainting, base: painting, mutate: func(f *models.CreationFields) { f.Title = "  " }, wantField: "title"},
		{name: "painting no product type", kind: models.KindPainting, base: painting, mutate: func(f *models.CreationFields) { f.ProductType = "" }, wantField: "productType"},
		{name: "painting no image", kind: models.KindPainting, base: painting, mutate: func(f *models.CreationFields) { f.ImageData = "" }, wantField: "imageData"},
		{name: "painting no canvas", kind: models.KindPainting, base: painting, mutate: func(f *models.CreationFields) { f.CanvasSize = nil }, wantField: "canvasSize"},
		{name: "painting zero canvas", kind: models.KindPainting, base: painting, mutate: func(f *models.CreationFields) { f.CanvasSize = &models.CanvasSize{} }, wantField: "canvasSize"},
		{name: "arrangement ok", kind: models.KindArrangement, base: arrangement},
		{name: "arrangement null data", kind: models.KindArrangement, base: arrangement, mutate: func(f *models.CreationFields) { f.ArrangementData = json.RawMessage("null") }, wantField: "arrangementData"},
		{name: "arrangement no snapshot", kind: models.KindArrangement, base: arrangement, mutate: func(f *models.CreationFields) { f.ImageSnapshot = "" }, wantField: "imageSnapshot"},
		{name: "bracelet ok", kind: models.KindBracelet, base: bracelet},
		{name: "bracelet no data", kind: models.KindBracelet, base: bracelet, mutate: func(f *models.CreationFields) { f.BraceletData = nil }, wantField: "braceletData"},
		{name: "bracelet no title", kind: models.KindBracelet, base: bracelet, mutate: func(f *models.CreationFields) { f.Title = "" }, wantField: "title"},
	}

	validators := DefaultValidators()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.base
			if tt.mutate != nil {
				tt.mutate(&f)
			}
			err := validators[tt.kind](f)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, models.ErrValidation)
			var verr *models.ValidationError
			if assert.ErrorAs(t, err, &verr) {
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Equal(t, string(tt.kind), verr.Kind)
			}
		})
	}
}
