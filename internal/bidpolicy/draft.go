package bidpolicy

import (
	"auction-client/internal/biddingerrors"
	"auction-client/internal/models"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateNewAuction checks a draft before creation: all fields are required,
// the cover must be present and the auction must close in the future.
func ValidateNewAuction(draft models.AuctionDraft, cover models.CoverImage, now time.Time) error {
	if err := ValidateDraft(draft); err != nil {
		return err
	}
	if cover.Empty() {
		return fmt.Errorf("bid policy: %w - cover image is required", biddingerrors.ErrInvalidDraft)
	}
	if !draft.ClosedAt.After(now) {
		return fmt.Errorf("bid policy: %w - closing time must be in the future", biddingerrors.ErrInvalidDraft)
	}
	return nil
}

// ValidateDraft checks the field rules shared by create and edit
func ValidateDraft(draft models.AuctionDraft) error {
	if err := validate.Struct(draft); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("bid policy: %w - %s", biddingerrors.ErrInvalidDraft, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("bid policy: %w - %v", biddingerrors.ErrInvalidDraft, err)
	}
	if strings.TrimSpace(draft.Title) == "" {
		return fmt.Errorf("bid policy: %w - title is required", biddingerrors.ErrInvalidDraft)
	}
	return nil
}

// fieldError converts a single validation failure into a readable message
func fieldError(fe validator.FieldError) string {
	field := fieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func fieldName(goName string) string {
	switch goName {
	case "StartBid":
		return "start bid"
	case "ClosedAt":
		return "closing time"
	default:
		return strings.ToLower(goName)
	}
}
