package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"meditranslate/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message domain.Message) error
	ListByConversationID(ctx context.Context, conversationID string) ([]domain.Message, error)
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
}

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Create(ctx context.Context, message domain.Message) error {
	const query = `
		INSERT INTO messages (id, conversation_id, role, original_text, original_lang, translated_text, translated_lang, audio_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.ConversationID,
		message.Role,
		message.OriginalText,
		message.OriginalLang,
		message.TranslatedText,
		message.TranslatedLang,
		message.AudioURL,
		message.CreatedAt,
	)
	return err
}

func (r *PgMessageRepository) ListByConversationID(ctx context.Context, conversationID string) ([]domain.Message, error) {
	const query = `
		SELECT id, conversation_id, role, original_text, original_lang, translated_text, translated_lang, audio_url, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var audioURL *string

		err = rows.Scan(
			&msg.ID,
			&msg.ConversationID,
			&msg.Role,
			&msg.OriginalText,
			&msg.OriginalLang,
			&msg.TranslatedText,
			&msg.TranslatedLang,
			&audioURL,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		msg.AudioURL = audioURL
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// likeEscaper neutraliza los metacaracteres de LIKE para que la consulta sea
// una búsqueda de substring literal, no un patrón.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search busca substring (case-insensitive) en texto original y traducido,
// uniendo el nombre del paciente de la conversación dueña.
func (r *PgMessageRepository) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	const sql = `
		SELECT m.id, m.conversation_id, c.patient_name, m.role, m.original_text, m.translated_text, m.created_at
		FROM messages m
		JOIN conversations c ON c.id = m.conversation_id
		WHERE m.original_text ILIKE '%' || $1 || '%'
		   OR m.translated_text ILIKE '%' || $1 || '%'
		ORDER BY m.created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, sql, likeEscaper.Replace(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var res domain.SearchResult
		err = rows.Scan(
			&res.MessageID,
			&res.ConversationID,
			&res.PatientName,
			&res.Role,
			&res.OriginalText,
			&res.TranslatedText,
			&res.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
