package compat

// Tablas de palabras clave del clasificador. Son sustrings en minúsculas
// sobre texto libre en español; cambiarlas cambia el comportamiento del
// motor, así que viven como datos y no como condicionales.

// violenceKeywords dispara la parada de seguridad: si cualquiera de las dos
// respuestas contiene uno de estos indicadores, el análisis se detiene y se
// recomienda terapia.
var violenceKeywords = []string{
	"golpe",
	"golpeo",
	"pego",
	"pegar",
	"violen",
	"agred",
	"agresiv",
	"lastim",
	"hago daño",
	"hacer daño",
	"grito",
	"insult",
	"empuj",
	"amenaz",
	"humill",
}

// levelRule asocia un nivel ordinal a una lista de indicadores. Las reglas
// de una tabla se evalúan en orden y gana la primera coincidencia.
type levelRule struct {
	level    int
	keywords []string
}

// importanceLevels mapea la respuesta a un ordinal 3/2/1.
var importanceLevels = []levelRule{
	{3, []string{"muy importante", "esencial", "fundamental", "imprescindible", "lo más importante", "lo mas importante"}},
	{2, []string{"importante", "bastante"}},
}

var communicationLevels = []levelRule{
	{5, []string{"mucha comunicación", "mucha comunicacion", "hablo", "hablar", "comunic", "fácil", "facil", "expreso"}},
	{3, []string{"algo", "normal", "a veces", "depende"}},
}

var securityLevels = []levelRule{
	{1, []string{"insegur", "celos", "desconf"}},
	{5, []string{"muy segur", "segur", "confío", "confio", "plena"}},
	{3, []string{"a veces", "normal", "depende", "algo"}},
}

var impulseControlLevels = []levelRule{
	{5, []string{"espacio", "pienso", "respiro", "me calmo", "cuento hasta", "salgo a caminar"}},
	{3, []string{"depende", "a veces"}},
}

var toleranceLevels = []levelRule{
	{5, []string{"toler", "acepto", "aceptar", "respeto", "paciencia", "los llevo bien"}},
	{3, []string{"a veces", "depende", "me cuesta un poco"}},
}

var successRateLevels = []levelRule{
	{3, []string{"casi siempre", "a veces", "normalmente"}},
	{5, []string{"siempre", "logramos", "resolvemos", "funciona"}},
}

var honestyLevels = []levelRule{
	{5, []string{"siempre digo la verdad", "totalmente sincer", "muy honest", "honest", "sincer", "siempre"}},
	{3, []string{"a veces", "depende", "casi siempre"}},
}

var forgivenessLevels = []levelRule{
	{5, []string{"perdon", "doy otra oportunidad", "olvido y sigo"}},
	{3, []string{"depende", "a veces", "me cuesta"}},
}

// Estilos de afrontamiento del conflicto, evaluados en orden: la violencia
// tiene prioridad sobre cualquier otro estilo.
const (
	styleViolence      = "violence"
	styleCommunication = "communication"
	styleDistance      = "distance"
	styleNeutral       = "neutral"
)

var conflictStyles = []struct {
	style    string
	keywords []string
}{
	{styleViolence, []string{"golpe", "grit", "insult", "romp", "agre", "empuj"}},
	{styleCommunication, []string{"hablo", "hablar", "dialog", "comunic", "converso", "escuch"}},
	{styleDistance, []string{"distanci", "me alejo", "espacio", "silencio", "me voy", "callo"}},
}
