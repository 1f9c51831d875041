package schema

import (
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-schema/internal/accessor"
	"github.com/goliatone/go-schema/internal/check"
	"github.com/goliatone/go-schema/internal/config"
	"github.com/goliatone/go-schema/internal/domain"
	"github.com/goliatone/go-schema/internal/infer"
)

// Sentinel errors surfaced by the engine. Validation failures are plain
// errors whose text is the human-readable message; they are deliberately not
// wrapped so callers can present them verbatim.
var (
	ErrInvalidJSON        = domain.ErrInvalidJSON
	ErrInvalidPointer     = domain.ErrInvalidPointer
	ErrSchemaForm         = domain.ErrSchemaForm
	ErrSchemaKeyword      = domain.ErrSchemaKeyword
	ErrCannotImply        = infer.ErrCannotImply
	ErrIndexOutOfBounds   = accessor.ErrIndexOutOfBounds
	ErrInvalidSegment     = accessor.ErrInvalidSegment
	ErrSchemaInvalid      = check.ErrSchemaInvalid
	ErrUnsupportedKeyword = check.ErrUnsupportedKeyword
	ErrConfigInvalid      = config.ErrConfigInvalid
)

const (
	configInvalidCode  = "SCHEMA_CONFIG_INVALID"
	documentFailedCode = "SCHEMA_DOCUMENT_CHECK_FAILED"
)

func wrapConfigError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "engine configuration invalid").
		WithTextCode(configInvalidCode)
}

func wrapCheckError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "schema document check failed").
		WithTextCode(documentFailedCode)
}
