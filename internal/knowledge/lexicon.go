package knowledge

import "github.com/Harshitk-cp/logos/internal/domain"

// PhraseRule maps folded phrases to a label. Rules are evaluated in order.
type PhraseRule struct {
	Label   string   `json:"label"`
	Phrases []string `json:"phrases"`
}

type WeightedWord struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

type EmotionSet struct {
	Emotion string         `json:"emotion"`
	Words   []WeightedWord `json:"words"`
}

type ConnectiveSet struct {
	Category domain.ConnectiveCategory `json:"category"`
	Words    []string                  `json:"words"`
}

type RelationSet struct {
	Type    domain.RelationType `json:"type"`
	Markers []string            `json:"markers"`
}

type PremiseIndicator struct {
	Kind         domain.PremiseKind `json:"kind"`
	Phrases      []string           `json:"phrases"`
	Strength     float64            `json:"strength"`
	Explicitness float64            `json:"explicitness"`
}

type AntonymPair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Lexicon groups the word lists the analyzer and evaluators match against.
// All entries are folded: lowercase, no accents.
type Lexicon struct {
	QuestionExplanatory []string
	QuestionNormative   []string
	ConditionalMarkers  []string
	CausalMarkers       []string
	SubjectiveMarkers   []string

	Modalities []PhraseRule
	Emotions   []EmotionSet

	AbstractSuffixes     []string
	DefinitionIndicators []string
	Relations            []RelationSet

	Hedges        []string
	VaguePronouns []string
	ModalVerbs    []string

	PremiseIndicators    []PremiseIndicator
	ConclusionIndicators []string
	UniversalQuantifiers []string
	Copulas              []string
	Negations            []string
	Connectives          []ConnectiveSet

	AbstractVocabulary []string
	AbstractPhrasing   []string
	UrgencyLow         []string
	UrgencyHigh        []string
	UrgencyMedium      []string
	ResponseCategories []PhraseRule

	Antonyms []AntonymPair
}

func defaultLexicon() Lexicon {
	return Lexicon{
		QuestionExplanatory: []string{"por que", "como es posible", "cual es la razon", "para que", "a que se debe", "como funciona"},
		QuestionNormative:   []string{"deberia", "deberiamos", "debo", "debemos", "se debe", "es correcto", "esta bien", "es justo", "es moral"},
		ConditionalMarkers:  []string{"si", "en caso de", "siempre que", "a menos que", "suponiendo que"},
		CausalMarkers:       []string{"porque", "ya que", "puesto que", "debido a", "dado que", "a causa de"},
		SubjectiveMarkers:   []string{"creo que", "pienso que", "opino que", "me parece", "siento que", "en mi opinion", "considero que"},

		Modalities: []PhraseRule{
			{Label: string(domain.ModalityDeontic), Phrases: []string{"deberia", "debe", "debes", "debemos", "tienes que", "tenemos que", "hay que", "obligatorio", "prohibido", "permitido"}},
			{Label: string(domain.ModalityAlethic), Phrases: []string{"necesariamente", "imposible", "es posible", "es necesario", "contingente", "inevitable"}},
			{Label: string(domain.ModalityEpistemic), Phrases: []string{"creo", "se que", "tal vez", "quizas", "quiza", "probablemente", "seguramente", "supongo", "dudo"}},
			{Label: string(domain.ModalityVolitive), Phrases: []string{"quiero", "deseo", "ojala", "me gustaria", "espero", "quisiera"}},
		},
		Emotions: []EmotionSet{
			{Emotion: "alegria", Words: []WeightedWord{{"feliz", 1}, {"contento", 1}, {"alegre", 1}, {"genial", 0.8}, {"encanta", 0.8}, {"gracias", 0.5}}},
			{Emotion: "tristeza", Words: []WeightedWord{{"triste", 1}, {"deprimido", 1}, {"llorar", 0.8}, {"pena", 0.6}, {"extrano", 0.5}}},
			{Emotion: "enojo", Words: []WeightedWord{{"enojado", 1}, {"furioso", 1}, {"odio", 1}, {"rabia", 0.9}, {"molesto", 0.7}, {"harto", 0.7}, {"idiota", 0.6}}},
			{Emotion: "miedo", Words: []WeightedWord{{"miedo", 1}, {"temo", 0.9}, {"asustado", 1}, {"preocupado", 0.7}, {"ansiedad", 0.8}, {"nervioso", 0.6}}},
			{Emotion: "sorpresa", Words: []WeightedWord{{"increible", 0.8}, {"sorprendido", 1}, {"wow", 0.7}, {"asombroso", 0.8}}},
			{Emotion: "curiosidad", Words: []WeightedWord{{"curiosidad", 1}, {"pregunto", 0.6}, {"interesa", 0.6}, {"quisiera saber", 0.8}}},
		},

		AbstractSuffixes:     []string{"dad", "tad", "cion", "sion", "ismo", "eza", "tud", "encia", "ancia", "miento"},
		DefinitionIndicators: []string{"es un", "es una", "se define como", "significa", "consiste en", "se refiere a", "concepto de", "idea de", "nocion de"},
		Relations: []RelationSet{
			{Type: domain.RelationCausal, Markers: []string{"porque", "ya que", "debido a", "causa", "provoca", "produce", "genera"}},
			{Type: domain.RelationConsequence, Markers: []string{"por lo tanto", "en consecuencia", "por eso", "luego", "asi que", "por consiguiente"}},
			{Type: domain.RelationContrast, Markers: []string{"pero", "sin embargo", "aunque", "no obstante", "en cambio", "a diferencia de"}},
			{Type: domain.RelationSimilarity, Markers: []string{"al igual que", "es como", "se parece a", "similar a", "parecido a", "igual que", "como si", "asi como", "tal como"}},
			{Type: domain.RelationDefinitional, Markers: []string{"es decir", "se define como", "significa", "o sea", "consiste en", "se refiere a"}},
		},

		Hedges:        []string{"tal vez", "quizas", "quiza", "posiblemente", "probablemente", "a lo mejor", "mas o menos", "de alguna manera", "en cierto modo", "supongo", "algo asi"},
		VaguePronouns: []string{"esto", "eso", "aquello", "ello", "algo", "alguien", "cosa", "cosas"},
		ModalVerbs:    []string{"puede", "podria", "podrian", "pueden", "deberia", "seria", "pudiera", "puedes"},

		PremiseIndicators: []PremiseIndicator{
			{Kind: domain.PremiseEvidence, Phrases: []string{"segun", "los datos", "los estudios", "un estudio", "demuestra", "demuestran", "se ha comprobado", "las estadisticas", "la evidencia"}, Strength: 0.8, Explicitness: 0.9},
			{Kind: domain.PremiseReason, Phrases: []string{"porque", "ya que", "dado que", "puesto que", "debido a", "pues"}, Strength: 0.7, Explicitness: 0.9},
			{Kind: domain.PremiseAssumption, Phrases: []string{"si", "supongamos", "asumiendo", "suponiendo", "en caso de", "imaginemos"}, Strength: 0.5, Explicitness: 0.8},
		},
		ConclusionIndicators: []string{"por lo tanto", "por tanto", "luego", "en consecuencia", "por consiguiente", "asi que", "de modo que", "de ahi que", "concluyo que", "se concluye que", "por eso", "por ende"},
		UniversalQuantifiers: []string{"todos", "todas", "siempre", "nunca", "ningun", "ninguno", "ninguna", "cada", "nadie", "todo"},
		Copulas:              []string{"es", "son", "esta", "estan", "era", "eran", "fue", "fueron"},
		Negations:            []string{"no", "nunca", "jamas", "ni", "tampoco", "nadie", "nada"},
		Connectives: []ConnectiveSet{
			{Category: domain.ConnectiveConditional, Words: []string{"si", "entonces", "en caso de", "siempre que", "a menos que"}},
			{Category: domain.ConnectiveCausal, Words: []string{"porque", "ya que", "puesto que", "dado que", "debido a", "pues"}},
			{Category: domain.ConnectiveConclusive, Words: []string{"por lo tanto", "por tanto", "luego", "por eso", "en consecuencia", "asi que", "por consiguiente", "por ende"}},
			{Category: domain.ConnectiveAdversative, Words: []string{"pero", "sin embargo", "aunque", "no obstante", "en cambio"}},
			{Category: domain.ConnectiveAdditive, Words: []string{"ademas", "tambien", "asimismo", "incluso"}},
			{Category: domain.ConnectiveComparative, Words: []string{"al igual que", "igual que", "como si", "tal como", "asi como", "similar a"}},
			{Category: domain.ConnectiveDisjunctive, Words: []string{"o bien", "ya sea"}},
			{Category: domain.ConnectiveTemporal, Words: []string{"despues", "antes", "mientras", "cuando", "desde que"}},
		},

		AbstractVocabulary: []string{"concepto", "idea", "teoria", "principio", "esencia", "naturaleza", "sentido", "significado", "verdad", "justicia", "libertad", "existencia", "realidad", "valor", "moral", "etica"},
		AbstractPhrasing:   []string{"en general", "en principio", "en teoria", "en abstracto", "que es el", "que es la", "el sentido de", "la naturaleza de"},
		UrgencyLow:         []string{"no es urgente", "sin prisa", "cuando puedas", "con calma", "no hay prisa"},
		UrgencyHigh:        []string{"urgente", "emergencia", "inmediatamente", "ya mismo", "ahora mismo", "cuanto antes", "auxilio"},
		UrgencyMedium:      []string{"pronto", "rapido", "necesito", "importante", "lo antes posible"},
		ResponseCategories: []PhraseRule{
			{Label: "explanation", Phrases: []string{"explica", "explicame", "por que", "como funciona"}},
			{Label: "opinion", Phrases: []string{"que opinas", "que piensas", "tu opinion", "crees que"}},
			{Label: "advice", Phrases: []string{"consejo", "recomiendas", "que hago", "que deberia", "ayudame"}},
			{Label: "definition", Phrases: []string{"que es", "que significa", "define", "definicion"}},
			{Label: "comparison", Phrases: []string{"diferencia entre", "compara", "mejor que", "versus", "vs"}},
			{Label: "evaluation", Phrases: []string{"evalua", "analiza", "es valido", "es correcto", "tiene sentido"}},
		},

		Antonyms: []AntonymPair{
			{"siempre", "nunca"},
			{"todo", "nada"},
			{"todos", "ninguno"},
			{"verdadero", "falso"},
			{"cierto", "falso"},
			{"posible", "imposible"},
			{"bueno", "malo"},
		},
	}
}
