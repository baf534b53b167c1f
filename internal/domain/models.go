package domain

import "time"

// Conversation agrupa una sesión doctor-paciente con sus mensajes ordenados.
type Conversation struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	DoctorLang  string    `json:"doctor_lang"`
	PatientLang string    `json:"patient_lang"`
	CreatedAt   time.Time `json:"created_at"`
}

// Message es una intervención con texto original y traducido, audio opcional.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	OriginalText   string    `json:"original_text"`
	OriginalLang   string    `json:"original_lang"`
	TranslatedText string    `json:"translated_text"`
	TranslatedLang string    `json:"translated_lang"`
	AudioURL       *string   `json:"audio_url"`
	CreatedAt      time.Time `json:"created_at"`
}

// Translation es el resultado de una traducción sin persistencia.
type Translation struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// AudioUpload referencia un objeto de audio ya subido al bucket.
type AudioUpload struct {
	AudioURL string `json:"audio_url"`
	Path     string `json:"filename"`
}

// AudioProcess es la salida del pipeline transcribir+traducir+subir sin fila en DB.
type AudioProcess struct {
	Transcript  string `json:"transcript"`
	Translation string `json:"translation"`
	AudioURL    string `json:"audio_url"`
	SourceLang  string `json:"source_lang"`
	TargetLang  string `json:"target_lang"`
}

// SearchResult es un mensaje que coincide con la búsqueda, con su contexto visual.
type SearchResult struct {
	MessageID      string    `json:"message_id"`
	ConversationID string    `json:"conversation_id"`
	PatientName    string    `json:"patient_name"`
	Role           string    `json:"role"`
	OriginalText   string    `json:"original_text"`
	TranslatedText string    `json:"translated_text"`
	Context        string    `json:"context"`
	CreatedAt      time.Time `json:"created_at"`
}
