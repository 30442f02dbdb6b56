package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-bot/internal/generator"
	"github.com/MKhiriev/go-pass-bot/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUserID  = "user_id"
	FieldAccount = "account"
	FieldSecret  = "secret"
	FieldPolicy  = "policy"
	FieldLength  = "length"
	FieldCount   = "count"
)

// Limits on user input.
const (
	MaxAccountRunes = 256
	MaxSecretBytes  = 4096
)

// CredentialValidator implements [Validator] for vault and generation
// requests. A bare int64 is validated as a user id.
type CredentialValidator struct{}

// NewCredentialValidator returns a [CredentialValidator] as a [Validator].
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are both accepted.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case int64:
		return validateUserID(value)

	case models.SaveCredentialRequest:
		return v.validateSaveRequest(ctx, value, fields...)
	case *models.SaveCredentialRequest:
		return v.validateSaveRequest(ctx, *value, fields...)

	case models.AccountQuery:
		return v.validateAccountQuery(ctx, value, fields...)
	case *models.AccountQuery:
		return v.validateAccountQuery(ctx, *value, fields...)

	case models.GenerateRequest:
		return v.validateGenerateRequest(ctx, value, fields...)
	case *models.GenerateRequest:
		return v.validateGenerateRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateSaveRequest(_ context.Context, req models.SaveCredentialRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldAccount, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if err := validateUserID(req.UserID); err != nil {
				return err
			}
		case FieldAccount:
			if err := validateAccount(req.Account); err != nil {
				return err
			}
		case FieldSecret:
			if req.Secret == "" {
				return ErrEmptySecret
			}
			if len(req.Secret) > MaxSecretBytes {
				return fmt.Errorf("%w: %d bytes, max %d", ErrSecretTooLong, len(req.Secret), MaxSecretBytes)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateAccountQuery(_ context.Context, q models.AccountQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldAccount}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if err := validateUserID(q.UserID); err != nil {
				return err
			}
		case FieldAccount:
			if err := validateAccount(q.Account); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateGenerateRequest checks the policy name and, when set, the length
// and count. Zero length and zero count mean "use the default".
func (v *CredentialValidator) validateGenerateRequest(_ context.Context, req models.GenerateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPolicy, FieldLength, FieldCount}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if err := validateUserID(req.UserID); err != nil {
				return err
			}
		case FieldPolicy:
			if _, err := generator.ParsePolicy(req.Policy); err != nil {
				return err
			}
		case FieldLength:
			if req.Length == 0 {
				continue
			}
			policy, err := generator.ParsePolicy(req.Policy)
			if err != nil {
				return err
			}
			bounds, err := generator.BoundsFor(policy)
			if err != nil {
				return err
			}
			if !bounds.Contains(req.Length) {
				return fmt.Errorf("%w: %d not in [%d, %d] for %s policy", generator.ErrInvalidLength, req.Length, bounds.Min, bounds.Max, policy)
			}
		case FieldCount:
			if req.Count != 0 && (req.Count < 1 || req.Count > generator.MaxCount) {
				return fmt.Errorf("%w: %d not in [1, %d]", generator.ErrInvalidCount, req.Count, generator.MaxCount)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUserID(id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

func validateAccount(account string) error {
	if strings.TrimSpace(account) == "" {
		return ErrEmptyAccount
	}
	if !utf8.ValidString(account) || strings.ContainsFunc(account, unicode.IsControl) {
		return ErrInvalidAccount
	}
	if n := utf8.RuneCountInString(account); n > MaxAccountRunes {
		return fmt.Errorf("%w: %d characters, max %d", ErrAccountTooLong, n, MaxAccountRunes)
	}
	return nil
}
