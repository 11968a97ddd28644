package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Languages lists the supported report languages; the first is the
// fallback.
var Languages = []language.Tag{language.English, language.BrazilianPortuguese}

var matcher = language.NewMatcher(Languages)

// ParseLanguage returns the supported language closest to s, which may be a
// single tag or an Accept-Language header value.
func ParseLanguage(s string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return Languages[0]
	}
	_, idx, _ := matcher.Match(tags...)
	return Languages[idx]
}

// translations pairs each English message key with its Brazilian
// Portuguese form. Keys double as the English text.
var translations = [][2]string{
	{"PARABOLA", "PARÁBOLA"},
	{"ELLIPSE", "ELIPSE"},
	{"HYPERBOLA", "HIPÉRBOLE"},

	{"Equation: %s", "Equação: %s"},
	{"Formulas:", "Fórmulas utilizadas:"},
	{"Results:", "Resultados:"},
	{"Numerical check:", "Verificação numérica:"},

	{"Orientation: horizontal (A > B)", "Orientação: horizontal (A > B)"},
	{"Orientation: vertical (B ≥ A)", "Orientação: vertical (B ≥ A)"},

	{"Vertex: h = -B/(2A), k = C - B²/(4A)", "Vértice: h = -B/(2A), k = C - B²/(4A)"},
	{"Focal parameter: p = 1/(4A)", "Parâmetro focal: p = 1/(4A)"},
	{"Focus: F = (h, k + p)", "Foco: F = (h, k + p)"},
	{"Directrix: y = k - p", "Diretriz: y = k - p"},
	{"Eccentricity: e = 1 (always)", "Excentricidade: e = 1 (sempre)"},

	{"Major axis: %v, minor axis: %v", "Eixo maior: %v, eixo menor: %v"},
	{"Focal distance: c = √(major² - minor²)", "Distância focal: c = √(maior² - menor²)"},
	{"Foci: on the %s axis", "Focos: no eixo %s"},
	{"Directrices: %s = center ± major²/c", "Diretrizes: %s = centro ± maior²/c"},
	{"Eccentricity: e = c/major", "Excentricidade: e = c/maior"},
	{"Focal distance: c = √(a² + b²)", "Distância focal: c = √(a² + b²)"},
	{"Foci: F₁ = (h+c, k), F₂ = (h-c, k)", "Focos: F₁ = (h+c, k), F₂ = (h-c, k)"},
	{"Directrices: x = h ± a²/c", "Diretrizes: x = h ± a²/c"},
	{"Eccentricity: e = c/a", "Excentricidade: e = c/a"},

	{"Vertex: (%.3f, %.3f)", "Vértice: (%.3f, %.3f)"},
	{"Focus: (%.3f, %.3f)", "Foco: (%.3f, %.3f)"},
	{"Directrix: y = %.3f", "Diretriz: y = %.3f"},
	{"Eccentricity: e = %.3f", "Excentricidade: e = %.3f"},
	{"Eccentricity: e = %.6f", "Excentricidade: e = %.6f"},
	{"Center: (%v, %v)", "Centro: (%v, %v)"},
	{"Semi-axes: a = %v, b = %v", "Semi-eixos: a = %v, b = %v"},
	{"Focal distance: c = %.3f", "Distância focal: c = %.3f"},
	{"Focus 1: (%.3f, %.3f)", "Foco 1: (%.3f, %.3f)"},
	{"Focus 2: (%.3f, %.3f)", "Foco 2: (%.3f, %.3f)"},
	{"Directrix 1: %s = %.3f", "Diretriz 1: %s = %.3f"},
	{"Directrix 2: %s = %.3f", "Diretriz 2: %s = %.3f"},

	{"Test point P: (%.3f, %.3f)", "Ponto de teste P: (%.3f, %.3f)"},
	{"|PF| = %.6f", "|PF| = %.6f"},
	{"|PF₁| = %.6f", "|PF₁| = %.6f"},
	{"dist(P, directrix) = %.6f", "dist(P, diretriz) = %.6f"},
	{"dist(P, directrix₁) = %.6f", "dist(P, diretriz₁) = %.6f"},
	{"|PF| / dist(P, directrix) = %.6f ≈ %.6f", "|PF| / dist(P, diretriz) = %.6f ≈ %.6f"},
}

var messages = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder()
	for _, tr := range translations {
		key, pt := tr[0], tr[1]
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
		if err := b.SetString(language.BrazilianPortuguese, key, pt); err != nil {
			panic(err)
		}
	}
	return b
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
