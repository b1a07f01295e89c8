package domain

import "time"

// Tipos de cuestionario soportados por la plataforma.
const (
	QuestionnaireTypePareja       = "pareja"
	QuestionnaireTypePersonalidad = "personalidad"
)

// Tipos de respuesta de una pregunta del catálogo.
const (
	AnswerKindSingleChoice = "single_choice"
	AnswerKindFreeText     = "free_text"
	AnswerKindLongFreeText = "long_free_text"
)

// Question es una entrada fija del catálogo. Los catálogos son configuración
// estática y nunca se mutan en runtime.
type Question struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Kind     string   `json:"kind"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// PersonalInfo identifica al encuestado. Inmutable una vez enviada para un
// intento de cuestionario.
type PersonalInfo struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Age         string `json:"age"` // validada 13-120
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	Orientation string `json:"orientation"`
}

// AnswerSet mapea id de pregunta (como clave string) a su respuesta.
// Tras la normalización todo valor es un string plano.
type AnswerSet map[string]string

// QuestionnaireDraft es el borrador persistido localmente, con clave
// "questionnaire:"+type. Un borrador con más de 3 horas se trata como ausente.
type QuestionnaireDraft struct {
	PersonalInfo         PersonalInfo   `json:"personalInfo"`
	Answers              map[string]any `json:"answers"`
	Completed            bool           `json:"completed"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex"`
	Timestamp            int64          `json:"timestamp"` // epoch-ms
}

// Questionnaire es un intento completado y sincronizado al backend.
type Questionnaire struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Answers      AnswerSet    `json:"answers"`
	Completed    bool         `json:"completed"`
	Timestamp    int64        `json:"timestamp"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ContactMessage es un mensaje recibido por el formulario de contacto.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Admin es una cuenta de operador con acceso al panel.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
