package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/models"
)

// journal is the SQL implementation of [Journal]. The same code serves
// SQLite and PostgreSQL; only the placeholder format and the error
// classifier differ.
type journal struct {
	db     *DB
	logger *logger.Logger
}

func NewJournal(db *DB, logger *logger.Logger) Journal {
	logger.Debug().Str("dialect", db.dialect).Msg("creating submission journal")
	return &journal{
		db:     db,
		logger: logger,
	}
}

func (j *journal) Save(ctx context.Context, s models.Submission) error {
	log := j.log(ctx)

	query, args, err := j.db.builder.
		Insert(submissionsTable).
		Columns(submissionColumns...).
		Values(
			s.MessageID,
			s.EntityID,
			s.Title,
			s.DocumentType.TypeNamedId,
			s.DocumentType.Function,
			s.DocumentType.Version,
			s.FromBoxID,
			s.ToBoxID,
			s.CustomDocumentID,
			s.PowerOfAttorney,
			s.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*journal.Save").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = j.db.ExecContext(ctx, query, args...); err != nil {
		class := j.db.errorClassificator.Classify(err)
		log.Err(err).Str("func", "*journal.Save").
			Str("message_id", s.MessageID).
			Stringer("classification", class).
			Msg("error saving submission")

		if class == UniqueViolation {
			return fmt.Errorf("%w: message %s", ErrAlreadyRecorded, s.MessageID)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*journal.Save").Str("message_id", s.MessageID).Msg("submission recorded")
	return nil
}

func (j *journal) GetByMessageID(ctx context.Context, messageID string) (models.Submission, error) {
	log := j.log(ctx)

	query, args, err := j.db.builder.
		Select(submissionColumns...).
		From(submissionsTable).
		Where(sq.Eq{"message_id": messageID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*journal.GetByMessageID").Msg("error building select query")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	s, err := scanSubmission(j.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Submission{}, fmt.Errorf("%w: message %s", ErrNotFound, messageID)
	}
	if err != nil {
		log.Err(err).Str("func", "*journal.GetByMessageID").Str("message_id", messageID).Msg("error reading submission")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return s, nil
}

func (j *journal) List(ctx context.Context, limit int) ([]models.Submission, error) {
	log := j.log(ctx)

	builder := j.db.builder.
		Select(submissionColumns...).
		From(submissionsTable).
		OrderBy("created_at DESC", "message_id")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*journal.List").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*journal.List").Msg("error listing submissions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			log.Err(err).Str("func", "*journal.List").Msg("error scanning submission")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		submissions = append(submissions, s)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*journal.List").Msg("error iterating submissions")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return submissions, nil
}

// log prefers the request-scoped logger and falls back to the journal's own.
func (j *journal) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return j.logger
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (models.Submission, error) {
	var s models.Submission
	err := row.Scan(
		&s.MessageID,
		&s.EntityID,
		&s.Title,
		&s.DocumentType.TypeNamedId,
		&s.DocumentType.Function,
		&s.DocumentType.Version,
		&s.FromBoxID,
		&s.ToBoxID,
		&s.CustomDocumentID,
		&s.PowerOfAttorney,
		&s.CreatedAt,
	)
	return s, err
}
