package knowledge

// Subtopic narrows a topic category. Keywords are folded (no accents).
type Subtopic struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// TopicCategory is one entry of the topic taxonomy. Topic order is the
// tie-break order when two topics score the same.
type TopicCategory struct {
	Name      string     `json:"name"`
	Keywords  []string   `json:"keywords"`
	Subtopics []Subtopic `json:"subtopics,omitempty"`
}

func defaultTopics() []TopicCategory {
	return []TopicCategory{
		{
			Name:     "filosofia",
			Keywords: []string{"filosofia", "etica", "moral", "existencia", "verdad", "conocimiento", "razon", "logica", "metafisica", "libertad", "justicia", "sentido", "argumento"},
			Subtopics: []Subtopic{
				{Name: "etica", Keywords: []string{"etica", "moral", "justicia", "justo", "bien", "mal"}},
				{Name: "epistemologia", Keywords: []string{"conocimiento", "verdad", "creencia", "saber"}},
				{Name: "logica", Keywords: []string{"logica", "argumento", "premisa", "conclusion", "falacia"}},
			},
		},
		{
			Name:     "ciencia",
			Keywords: []string{"ciencia", "cientifico", "experimento", "hipotesis", "teoria", "evidencia", "datos", "estudio", "fisica", "quimica", "biologia", "mamiferos", "animales"},
			Subtopics: []Subtopic{
				{Name: "metodo", Keywords: []string{"experimento", "hipotesis", "evidencia", "datos"}},
				{Name: "biologia", Keywords: []string{"biologia", "mamiferos", "animales", "especie"}},
			},
		},
		{
			Name:     "tecnologia",
			Keywords: []string{"tecnologia", "computadora", "software", "internet", "inteligencia artificial", "algoritmo", "programa", "digital", "robot", "datos"},
			Subtopics: []Subtopic{
				{Name: "ia", Keywords: []string{"inteligencia artificial", "algoritmo", "robot"}},
			},
		},
		{
			Name:     "politica",
			Keywords: []string{"politica", "gobierno", "estado", "ley", "democracia", "elecciones", "partido", "presidente", "derechos", "votar"},
		},
		{
			Name:     "economia",
			Keywords: []string{"economia", "dinero", "mercado", "precio", "inflacion", "empleo", "impuestos", "comercio", "salario", "ventas"},
			Subtopics: []Subtopic{
				{Name: "macroeconomia", Keywords: []string{"inflacion", "empleo", "impuestos"}},
				{Name: "mercados", Keywords: []string{"mercado", "precio", "comercio", "ventas"}},
			},
		},
		{
			Name:     "salud",
			Keywords: []string{"salud", "medico", "enfermedad", "hospital", "tratamiento", "medicina", "vacuna", "sintoma", "dieta"},
		},
		{
			Name:     "educacion",
			Keywords: []string{"educacion", "escuela", "estudiar", "estudias", "estudia", "examen", "profesor", "universidad", "aprender", "apruebas", "aprobar"},
		},
		{
			Name:     "sociedad",
			Keywords: []string{"sociedad", "cultura", "familia", "comunidad", "personas", "gente", "social"},
		},
		{
			Name:     "naturaleza",
			Keywords: []string{"naturaleza", "clima", "lluvia", "llueve", "llovio", "medio ambiente", "planta", "calle", "mojada"},
		},
	}
}
