package ui

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"fitjourney/internal/nav"
)

// User-facing copy. The shell is written for Brazilian Portuguese speakers.
const (
	TextBrand           = "FitJourney"
	TextWelcome         = "Bem-vindo ao FitJourney"
	TextWeeklySummary   = "Resumo da Semana"
	TextNoPending       = "Nenhuma atualização pendente"
	TextPlaceholderBody = "Conteúdo da seção será carregado aqui"
	TextFooterHint      = "tab foco · enter abrir · m menu · SPC comandos · q sair"

	textPendingFmt = "%d atualizações pendentes"
	textSectionFmt = "Seção de %s"
)

// PendingText is the card subtitle for an item.
func PendingText(item nav.MenuItem) string {
	if item.HasBadge() {
		return fmt.Sprintf(textPendingFmt, item.PendingCount())
	}
	return TextNoPending
}

// SectionHeading is the placeholder heading for a section label, with every
// word capitalised.
func SectionHeading(label string) string {
	caser := cases.Title(language.BrazilianPortuguese, cases.NoLower)
	return caser.String(fmt.Sprintf(textSectionFmt, label))
}
