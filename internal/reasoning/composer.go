package reasoning

import (
	"fmt"
	"strings"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
)

const (
	SectionSummary      = "Resumen"
	SectionStructure    = "Estructura"
	SectionFallacies    = "Falacias y sesgos"
	SectionInferences   = "Inferencias"
	SectionStrengths    = "Fortalezas"
	SectionWeaknesses   = "Debilidades"
	SectionRecommended  = "Recomendaciones"
	SectionApproach     = "Enfoque recomendado"
	SectionAlternatives = "Perspectivas alternativas"
)

// Composer renders a report into ordered sections and plain text.
type Composer struct {
	kb  *knowledge.KnowledgeBase
	rnd domain.RandomSource
}

func NewComposer(kb *knowledge.KnowledgeBase, rnd domain.RandomSource) *Composer {
	return &Composer{kb: kb, rnd: rnd}
}

// Compose fills Summary, Sections and Text of r.
func (c *Composer) Compose(r *domain.AnalysisReport) {
	r.Summary = summary(r)
	r.Sections = []domain.Section{
		{Title: SectionSummary, Lines: []string{r.Summary}},
		{Title: SectionStructure, Lines: structureLines(r)},
		{Title: SectionFallacies, Lines: detectionLines(r)},
		{Title: SectionInferences, Lines: inferenceLines(r)},
		{Title: SectionStrengths, Lines: orNone(r.Quality.Strengths)},
		{Title: SectionWeaknesses, Lines: orNone(r.Quality.Weaknesses)},
		{Title: SectionRecommended, Lines: orNone(r.Quality.Recommendations)},
		{Title: SectionApproach, Lines: c.approachLines(r)},
		{Title: SectionAlternatives, Lines: c.alternativeLines(r)},
	}
	r.Text = render(r.Sections)
}

func summary(r *domain.AnalysisReport) string {
	a := r.Analysis
	return fmt.Sprintf("Consulta %s en el ámbito %s: %d premisa(s), %d conclusión(es), %d falacia(s), %d sesgo(s). Calidad %s (%.2f).",
		a.Linguistic.SentenceType, a.Contextual.Domain,
		len(a.Logical.Premises), len(a.Logical.Conclusions),
		len(r.Fallacies()), len(r.Biases()),
		r.Quality.Tier, r.Quality.Score)
}

func structureLines(r *domain.AnalysisReport) []string {
	s := r.Structure
	lines := []string{
		fmt.Sprintf("Tipo de argumento: %s (estructura %s).", s.Type, r.Analysis.Logical.StructureType),
		fmt.Sprintf("Fuerza %.2f, coherencia %.2f, completitud %.2f, claridad %.2f.", s.Strength, s.Coherence, s.Completeness, s.Clarity),
	}
	for _, p := range r.Analysis.Logical.Premises {
		lines = append(lines, fmt.Sprintf("Premisa (%s): %s", p.Kind, p.Content))
	}
	for _, cl := range r.Analysis.Logical.Conclusions {
		lines = append(lines, fmt.Sprintf("Conclusión (%s): %s", cl.Kind, cl.Content))
	}
	if len(s.Contradictions) > 0 {
		lines = append(lines, "Posibles contradicciones: "+strings.Join(s.Contradictions, ", ")+".")
	}
	return lines
}

func detectionLines(r *domain.AnalysisReport) []string {
	if len(r.Detections) == 0 {
		return []string{"No se detectaron falacias ni sesgos."}
	}
	lines := make([]string, 0, len(r.Detections))
	for _, d := range r.Detections {
		kind := "falacia"
		if d.IsBias() {
			kind = "sesgo"
		}
		lines = append(lines, fmt.Sprintf("%s [%s %s] severidad %.2f, confianza %.2f: «%s»", d.Name, kind, d.Category, d.Severity, d.Confidence, d.Excerpt))
	}
	return lines
}

func inferenceLines(r *domain.AnalysisReport) []string {
	if len(r.Inferences) == 0 {
		return []string{"Sin inferencias con confianza suficiente."}
	}
	lines := make([]string, 0, len(r.Inferences))
	for _, inf := range r.Inferences {
		line := fmt.Sprintf("[%s %.2f] %s", inf.Strategy, inf.Confidence, inf.Statement)
		if len(inf.Flags) > 0 {
			line += " (" + strings.Join(inf.Flags, ", ") + ")"
		}
		lines = append(lines, line)
	}
	return lines
}

func (c *Composer) approachLines(r *domain.AnalysisReport) []string {
	ap := r.Approach
	sys, ok := c.kb.ThinkingSystem(ap.Style)
	if !ok {
		return []string{string(ap.Style)}
	}
	lines := []string{fmt.Sprintf("%s (%.2f).", sys.Name, ap.Score)}
	if len(ap.Rationale) > 0 {
		lines = append(lines, "Motivos: "+strings.Join(ap.Rationale, "; ")+".")
	}
	return append(lines, sys.Recommendation)
}

func (c *Composer) alternativeLines(r *domain.AnalysisReport) []string {
	var lines []string
	for _, inf := range r.Inferences {
		lines = append(lines, inf.Alternatives...)
	}
	if runnerUp, ok := runnerUp(r.Approach); ok {
		if sys, ok := c.kb.ThinkingSystem(runnerUp); ok {
			lines = append(lines, fmt.Sprintf("Desde el %s: %s", strings.ToLower(sys.Name), sys.Recommendation))
		}
	}
	if qs := c.kb.ReflectiveQuestions(); len(qs) > 0 {
		lines = append(lines, qs[c.rnd.Intn(r.Query, len(qs))])
	}
	return orNone(lines)
}

// runnerUp returns the best-ranked style other than the selected one.
func runnerUp(ap domain.ApproachRecommendation) (domain.ThinkingStyle, bool) {
	var best domain.StyleScore
	found := false
	for _, s := range ap.Ranking {
		if s.Style == ap.Style {
			continue
		}
		if !found || s.Score > best.Score {
			best, found = s, true
		}
	}
	return best.Style, found
}

func orNone(lines []string) []string {
	if len(lines) == 0 {
		return []string{"Ninguna."}
	}
	return lines
}

func render(sections []domain.Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("## ")
		b.WriteString(s.Title)
		b.WriteString("\n")
		for _, l := range s.Lines {
			b.WriteString("- ")
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	return b.String()
}
