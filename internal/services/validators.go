package services

import (
	"bytes"
	"strings"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

// Validator checks the kind-specific required fields of an insert.
type Validator func(f models.CreationFields) error

// DefaultValidators returns the validator of every creation kind.
func DefaultValidators() map[models.Kind]Validator {
	return map[models.Kind]Validator{
		models.KindPainting:    ValidatePainting,
		models.KindArrangement: ValidateArrangement,
		models.KindBracelet:    ValidateBracelet,
	}
}

// ValidatePainting requires title, productType, imageData and canvasSize.
func ValidatePainting(f models.CreationFields) error {
	kind := string(models.KindPainting)
	switch {
	case blank(f.Title):
		return missing(kind, "title")
	case blank(f.ProductType):
		return missing(kind, "productType")
	case blank(f.ImageData):
		return missing(kind, "imageData")
	case f.CanvasSize == nil:
		return missing(kind, "canvasSize")
	case f.CanvasSize.Width <= 0 || f.CanvasSize.Height <= 0:
		return models.NewValidationError(kind, "canvasSize", "width and height must be positive")
	}
	return nil
}

// ValidateArrangement requires title, arrangementData and imageSnapshot.
func ValidateArrangement(f models.CreationFields) error {
	kind := string(models.KindArrangement)
	switch {
	case blank(f.Title):
		return missing(kind, "title")
	case emptyDocument(f.ArrangementData):
		return missing(kind, "arrangementData")
	case blank(f.ImageSnapshot):
		return missing(kind, "imageSnapshot")
	}
	return nil
}

// ValidateBracelet requires title, braceletData and imageSnapshot.
func ValidateBracelet(f models.CreationFields) error {
	kind := string(models.KindBracelet)
	switch {
	case blank(f.Title):
		return missing(kind, "title")
	case emptyDocument(f.BraceletData):
		return missing(kind, "braceletData")
	case blank(f.ImageSnapshot):
		return missing(kind, "imageSnapshot")
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func emptyDocument(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func missing(kind, field string) error {
	return models.NewValidationError(kind, field, "required field is missing")
}
