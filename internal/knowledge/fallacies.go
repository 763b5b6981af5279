package knowledge

import (
	"regexp"
	"strings"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/textnorm"
)

// MatchFunc evaluates one rule against a folded query. It returns nil when
// the rule does not fire.
type MatchFunc func(doc *textnorm.Doc) (*domain.MatchInfo, error)

// FallacyDefinition is one entry of the detection rule table. Informal
// rules get severity/confidence adjusted per match; formal and cognitive
// rules report their base values unchanged.
type FallacyDefinition struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Category       domain.FallacyCategory `json:"category"`
	Match          MatchFunc              `json:"-"`
	BaseSeverity   float64                `json:"base_severity"`
	BaseConfidence float64                `json:"base_confidence"`
	Correction     string                 `json:"correction"`
	Example        string                 `json:"example"`
}

const (
	IDAdHominem           = "ad_hominem"
	IDStrawman            = "strawman"
	IDSlipperySlope       = "slippery_slope"
	IDFalseDilemma        = "false_dilemma"
	IDAppealToAuthority   = "appeal_to_authority"
	IDFalseCause          = "correlation_causation"
	IDAffirmingConsequent = "affirming_the_consequent"
	IDDenyingAntecedent   = "denying_the_antecedent"
	IDConfirmationBias    = "confirmation_bias"
	IDAvailabilityBias    = "availability_bias"
	IDAnchoringBias       = "anchoring_bias"
)

const (
	FormalSeverity   = 0.8
	FormalConfidence = 0.9
	BiasSeverity     = 0.4
	BiasConfidence   = 0.6
)

// RegexMatcher returns a matcher that fires on any of the patterns. The
// reported span is the earliest match; Count sums matches over patterns.
func RegexMatcher(patterns ...string) MatchFunc {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return func(doc *textnorm.Doc) (*domain.MatchInfo, error) {
		var info *domain.MatchInfo
		for _, re := range res {
			locs := re.FindAllStringIndex(doc.Text(), -1)
			if len(locs) == 0 {
				continue
			}
			if info == nil {
				info = &domain.MatchInfo{Start: locs[0][0], End: locs[0][1]}
			} else if locs[0][0] < info.Start {
				info.Start, info.End = locs[0][0], locs[0][1]
			}
			info.Count += len(locs)
		}
		return info, nil
	}
}

// PhraseMatcher fires on any folded phrase found on word boundaries.
func PhraseMatcher(phrases ...string) MatchFunc {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return RegexMatcher(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

var (
	conditionalTemplate = regexp.MustCompile(`\bsi\s+([^,.;]+?),?\s+entonces\s+([^.;]+)`)
	inferenceTemplate   = regexp.MustCompile(`^[\s.;,]*(.+?),?\s+(?:luego|por lo tanto|por tanto|por consiguiente|en consecuencia|asi que|entonces|por ende)[\s,]+([^.;]+)`)
)

// ConditionalArgument is the literal "si P, entonces Q. M, luego C" form.
type ConditionalArgument struct {
	Antecedent string
	Consequent string
	Minor      string
	Conclusion string
	Start      int
	End        int
}

// ParseConditionalArgument extracts the templated conditional argument from
// folded text, if present.
func ParseConditionalArgument(text string) (*ConditionalArgument, bool) {
	loc := conditionalTemplate.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, false
	}
	rest := text[loc[1]:]
	inf := inferenceTemplate.FindStringSubmatchIndex(rest)
	if inf == nil {
		return nil, false
	}
	return &ConditionalArgument{
		Antecedent: strings.TrimSpace(text[loc[2]:loc[3]]),
		Consequent: strings.TrimSpace(text[loc[4]:loc[5]]),
		Minor:      strings.Trim(rest[inf[2]:inf[3]], " .,;"),
		Conclusion: strings.Trim(rest[inf[4]:inf[5]], " .,;"),
		Start:      loc[0],
		End:        loc[1] + inf[1],
	}, true
}

func hasNegation(s string) bool {
	for _, tok := range textnorm.Tokenize(s) {
		switch tok {
		case "no", "nunca", "jamas", "ni", "tampoco":
			return true
		}
	}
	return false
}

type conditionalForm int

const (
	formNone conditionalForm = iota
	formAffirmingConsequent
	formDenyingAntecedent
)

func classifyConditional(arg *ConditionalArgument) conditionalForm {
	p := textnorm.ContentStems(arg.Antecedent)
	q := textnorm.ContentStems(arg.Consequent)
	m := textnorm.ContentStems(arg.Minor)
	c := textnorm.ContentStems(arg.Conclusion)

	mp, mq := textnorm.Overlap(m, p), textnorm.Overlap(m, q)
	cp, cq := textnorm.Overlap(c, p), textnorm.Overlap(c, q)

	switch {
	case !hasNegation(arg.Minor) && mq > mp && cp >= cq:
		return formAffirmingConsequent
	case hasNegation(arg.Minor) && mp > 0 && mp >= mq && hasNegation(arg.Conclusion):
		return formDenyingAntecedent
	}
	return formNone
}

func conditionalMatcher(want conditionalForm) MatchFunc {
	return func(doc *textnorm.Doc) (*domain.MatchInfo, error) {
		arg, ok := ParseConditionalArgument(doc.Text())
		if !ok || classifyConditional(arg) != want {
			return nil, nil
		}
		return &domain.MatchInfo{Start: arg.Start, End: arg.End, Count: 1}, nil
	}
}

func defaultFallacies() []FallacyDefinition {
	return []FallacyDefinition{
		{
			ID:       IDAdHominem,
			Name:     "Ad hominem",
			Category: domain.CategoryInformal,
			Match: RegexMatcher(
				`\b(?:eres|es|sos|son)\s+(?:un\s+|una\s+|unos\s+|unas\s+)?(?:idiota|idiotas|estupido|estupida|imbecil|ignorante|ignorantes|tonto|tonta|ridiculo|incompetente|mentiroso|mentirosa|fanatico|inutil)\b`,
				`\b(?:que|como) va a saber (?:el|ella|usted|tu|ese)\b`,
				`\bno (?:le|te) hagas caso,? (?:es|porque es)\b`,
			),
			BaseSeverity:   0.8,
			BaseConfidence: 0.75,
			Correction:     "Evalúa el argumento por su contenido, no por las características de quien lo formula.",
			Example:        "Eres un ignorante, así que tu opinión sobre economía no vale.",
		},
		{
			ID:       IDStrawman,
			Name:     "Hombre de paja",
			Category: domain.CategoryInformal,
			Match: RegexMatcher(
				`\b(?:o sea|entonces|asi que|lo que)(?: que)? (?:tu|usted) (?:dices|quieres decir|estas diciendo|afirmas|propones|insinuas) (?:es )?que\b`,
				`\bsegun (?:tu|usted),? (?:todos|nadie|nada|siempre|nunca)\b`,
			),
			BaseSeverity:   0.6,
			BaseConfidence: 0.5,
			Correction:     "Reformula la posición contraria en su versión más fuerte antes de criticarla.",
			Example:        "O sea que tú dices que no debemos tener ninguna ley.",
		},
		{
			ID:       IDSlipperySlope,
			Name:     "Pendiente resbaladiza",
			Category: domain.CategoryInformal,
			Match: RegexMatcher(
				`\bsi (?:permitimos|dejamos|aceptamos|legalizamos|empezamos)\b.{0,120}?\b(?:terminara|acabara|llevara a|conducira a|terminaremos|acabaremos)\b`,
				`\b(?:lo siguiente sera|despues vendra|sera el principio del fin|a la larga todos)\b`,
			),
			BaseSeverity:   0.6,
			BaseConfidence: 0.55,
			Correction:     "Justifica cada paso de la cadena causal en lugar de asumir que el peor desenlace es inevitable.",
			Example:        "Si permitimos esto, terminaremos perdiendo todas nuestras libertades.",
		},
		{
			ID:       IDFalseDilemma,
			Name:     "Falso dilema",
			Category: domain.CategoryInformal,
			Match: RegexMatcher(
				`\bo estas conmigo o (?:estas )?contra mi\b`,
				`\bo\s+[^,.;]{1,60},?\s+o\s+[^,.;]{1,60}[,;]?\s*no hay (?:otra|mas) (?:opcion|alternativa|salida)\b`,
				`\bsolo (?:hay|existen|tenemos) dos (?:opciones|alternativas|caminos|posibilidades)\b`,
			),
			BaseSeverity:   0.65,
			BaseConfidence: 0.6,
			Correction:     "Considera si existen opciones intermedias o alternativas no mencionadas.",
			Example:        "O estás conmigo o estás contra mí.",
		},
		{
			ID:       IDAppealToAuthority,
			Name:     "Apelación a la autoridad",
			Category: domain.CategoryInformal,
			Match: RegexMatcher(
				`\b(?:segun|como dice|como dijo|lo dice|lo dijo|afirma|asegura) (?:el |la |un |una |los |las )?(?:experto|expertos|doctor|doctora|cientifico|cientificos|profesor|famoso|famosa|autoridad|celebridad)\b`,
				`\b(?:es verdad|es cierto) porque lo dice\b`,
			),
			BaseSeverity:   0.5,
			BaseConfidence: 0.5,
			Correction:     "Comprueba si la autoridad es competente en el tema y qué evidencia ofrece.",
			Example:        "Es cierto porque lo dice un famoso en televisión.",
		},
		{
			ID:       IDFalseCause,
			Name:     "Correlación no implica causalidad",
			Category: domain.CategoryInformal,
			Match: RegexMatcher(
				`\b(?:desde que|cada vez que|siempre que)\b.{1,100}?\b(?:aumento|aumentaron|subio|subieron|bajo|bajaron|disminuyo|crecio|crecieron|mejoro|empeoro)\b.{0,80}?\b(?:por lo tanto|entonces|luego|asi que|por eso|causa|provoca|se debe a)\b`,
				`\b(?:coinciden|correlacion|correlacionados|estan relacionados)\b.{0,80}?\b(?:por lo tanto|entonces|luego|causa|provoca)\b`,
			),
			BaseSeverity:   0.6,
			BaseConfidence: 0.5,
			Correction:     "Que dos hechos ocurran juntos no prueba que uno cause el otro; busca un mecanismo o un control.",
			Example:        "Desde que llegó el nuevo vecino aumentaron los robos, así que él es el culpable.",
		},
		{
			ID:             IDAffirmingConsequent,
			Name:           "Afirmación del consecuente",
			Category:       domain.CategoryFormal,
			Match:          conditionalMatcher(formAffirmingConsequent),
			BaseSeverity:   FormalSeverity,
			BaseConfidence: FormalConfidence,
			Correction:     "De «si P entonces Q» y «Q» no se sigue «P»: Q puede tener otras causas.",
			Example:        "Si llueve, entonces la calle se moja. La calle está mojada, luego llovió.",
		},
		{
			ID:             IDDenyingAntecedent,
			Name:           "Negación del antecedente",
			Category:       domain.CategoryFormal,
			Match:          conditionalMatcher(formDenyingAntecedent),
			BaseSeverity:   FormalSeverity,
			BaseConfidence: FormalConfidence,
			Correction:     "De «si P entonces Q» y «no P» no se sigue «no Q».",
			Example:        "Si estudias, entonces apruebas. No estudias, por lo tanto no apruebas.",
		},
		{
			ID:       IDConfirmationBias,
			Name:     "Sesgo de confirmación",
			Category: domain.CategoryCognitive,
			Match: PhraseMatcher(
				"solo leo", "solo escucho", "solo busco", "solo creo en", "confirma lo que ya",
				"confirma lo que pensaba", "siempre supe que", "como ya sabia", "sabia que tenia razon", "lo que yo decia",
			),
			BaseSeverity:   BiasSeverity,
			BaseConfidence: BiasConfidence,
			Correction:     "Busca activamente información que pueda contradecir tu postura.",
			Example:        "Solo leo los medios que confirman lo que ya pienso.",
		},
		{
			ID:       IDAvailabilityBias,
			Name:     "Sesgo de disponibilidad",
			Category: domain.CategoryCognitive,
			Match: PhraseMatcher(
				"vi en las noticias", "vi en la tele", "conozco a alguien que", "a mi me paso",
				"a un amigo le paso", "a mi primo le paso", "escuche de un caso", "lei un caso",
			),
			BaseSeverity:   BiasSeverity,
			BaseConfidence: BiasConfidence,
			Correction:     "Un caso memorable no es una estadística; consulta datos de frecuencia.",
			Example:        "Conozco a alguien que fumó toda su vida y está sano.",
		},
		{
			ID:       IDAnchoringBias,
			Name:     "Sesgo de anclaje",
			Category: domain.CategoryCognitive,
			Match: PhraseMatcher(
				"el primer precio", "la primera impresion", "partiendo de la cifra", "originalmente costaba",
				"el precio inicial", "antes costaba", "la primera oferta",
			),
			BaseSeverity:   BiasSeverity,
			BaseConfidence: BiasConfidence,
			Correction:     "Evalúa el valor con referencias independientes, no con la primera cifra que viste.",
			Example:        "Antes costaba el doble, así que ahora es una ganga.",
		},
	}
}
