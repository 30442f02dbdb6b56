package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/models"
)

// credentialRepository is the SQL implementation of [CredentialRepository]
// over the passwords table.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, log *logger.Logger) CredentialRepository {
	log.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: log,
	}
}

// Insert implements [CredentialRepository].
func (r *credentialRepository) Insert(ctx context.Context, rec models.CredentialRecord) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCredentialQuery(r.db.builder, rec)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		class := r.db.classifier.Classify(err)
		if class == ClassUniqueViolation {
			log.Debug().Str("func", "*credentialRepository.Insert").Int64("user_id", rec.UserID).Msg("unique index rejected insert")
			return 0, ErrAccountAlreadyExists
		}

		log.Err(err).Str("func", "*credentialRepository.Insert").Int64("user_id", rec.UserID).Stringer("class", class).Msg("error inserting credential")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// Exists implements [CredentialRepository].
func (r *credentialRepository) Exists(ctx context.Context, userID int64, account string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsCredentialQuery(r.db.builder, userID, account)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "*credentialRepository.Exists").Int64("user_id", userID).Stringer("class", r.db.classifier.Classify(err)).Msg("error checking credential")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// ListByUser implements [CredentialRepository]. A date_added value that does
// not parse is logged and left as the zero time; the record is still
// returned.
func (r *credentialRepository) ListByUser(ctx context.Context, userID int64) ([]models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCredentialsQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListByUser").Int64("user_id", userID).Stringer("class", r.db.classifier.Classify(err)).Msg("error listing credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.CredentialRecord, 0)
	for rows.Next() {
		var (
			rec       models.CredentialRecord
			dateAdded sql.NullString
		)
		if err = rows.Scan(&rec.ID, &rec.UserID, &rec.Account, &rec.EncryptedSecret, &dateAdded); err != nil {
			log.Err(err).Str("func", "*credentialRepository.ListByUser").Int64("user_id", userID).Msg("error scanning credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if dateAdded.Valid {
			createdAt, parseErr := time.ParseInLocation(DateLayout, dateAdded.String, time.Local)
			if parseErr != nil {
				log.Warn().Err(parseErr).Str("func", "*credentialRepository.ListByUser").Int64("id", rec.ID).Msg("unparsable date_added")
			}
			rec.CreatedAt = createdAt
		}

		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListByUser").Int64("user_id", userID).Msg("error iterating credential rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// DeleteAllByUser implements [CredentialRepository].
func (r *credentialRepository) DeleteAllByUser(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentialsQuery(r.db.builder, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.DeleteAllByUser").Int64("user_id", userID).Stringer("class", r.db.classifier.Classify(err)).Msg("error deleting credentials")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
