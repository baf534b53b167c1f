package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"meditranslate/internal/domain"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation domain.Conversation) error
	List(ctx context.Context) ([]domain.Conversation, error)
	GetByID(ctx context.Context, id string) (domain.Conversation, error)
	Update(ctx context.Context, id, patientName, doctorLang, patientLang string) (domain.Conversation, error)
	Delete(ctx context.Context, id string) error
	Probe(ctx context.Context) error
}

type PgConversationRepository struct {
	pool *pgxpool.Pool
}

func NewPgConversationRepository(pool *pgxpool.Pool) *PgConversationRepository {
	return &PgConversationRepository{pool: pool}
}

func (r *PgConversationRepository) Create(ctx context.Context, conversation domain.Conversation) error {
	const query = `
		INSERT INTO conversations (id, patient_name, doctor_lang, patient_lang, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		conversation.ID,
		conversation.PatientName,
		conversation.DoctorLang,
		conversation.PatientLang,
		conversation.CreatedAt,
	)
	return err
}

func (r *PgConversationRepository) List(ctx context.Context) ([]domain.Conversation, error) {
	const query = `
		SELECT id, patient_name, doctor_lang, patient_lang, created_at
		FROM conversations
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []domain.Conversation
	for rows.Next() {
		var conv domain.Conversation
		err = rows.Scan(
			&conv.ID,
			&conv.PatientName,
			&conv.DoctorLang,
			&conv.PatientLang,
			&conv.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return conversations, nil
}

func (r *PgConversationRepository) GetByID(ctx context.Context, id string) (domain.Conversation, error) {
	const query = `
		SELECT id, patient_name, doctor_lang, patient_lang, created_at
		FROM conversations
		WHERE id = $1
	`
	var conv domain.Conversation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&conv.ID,
		&conv.PatientName,
		&conv.DoctorLang,
		&conv.PatientLang,
		&conv.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Conversation{}, err
	}
	return conv, err
}

// Update sobrescribe únicamente los campos no vacíos y devuelve la fila resultante.
func (r *PgConversationRepository) Update(ctx context.Context, id, patientName, doctorLang, patientLang string) (domain.Conversation, error) {
	const query = `
		UPDATE conversations
		SET patient_name = COALESCE(NULLIF($2, ''), patient_name),
		    doctor_lang  = COALESCE(NULLIF($3, ''), doctor_lang),
		    patient_lang = COALESCE(NULLIF($4, ''), patient_lang)
		WHERE id = $1
		RETURNING id, patient_name, doctor_lang, patient_lang, created_at
	`
	var conv domain.Conversation
	err := r.pool.QueryRow(ctx, query, id, patientName, doctorLang, patientLang).Scan(
		&conv.ID,
		&conv.PatientName,
		&conv.DoctorLang,
		&conv.PatientLang,
		&conv.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Conversation{}, err
	}
	return conv, err
}

// Delete elimina la conversación; los mensajes caen por el FK ON DELETE CASCADE.
func (r *PgConversationRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM conversations WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Probe hace un select mínimo para verificar conectividad con la tabla.
func (r *PgConversationRepository) Probe(ctx context.Context) error {
	const query = `SELECT id FROM conversations LIMIT 1`

	var id string
	err := r.pool.QueryRow(ctx, query).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}
