package page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/kastheco/folio/content"
	"github.com/kastheco/folio/log"
	"github.com/kastheco/folio/section"
)

const (
	maxTextWidth = 96
	sidePadding  = 4
)

// textWidth is the wrap width for section bodies.
func (p *Page) textWidth() int {
	w := p.width - 2*sidePadding
	if w > maxTextWidth {
		w = maxTextWidth
	}
	return max(w, 20)
}

func (p *Page) renderSection(id string) string {
	var body string
	switch id {
	case section.Home:
		body = p.renderHome()
	case section.Projects:
		body = p.renderProjects()
	case section.Experience:
		body = p.renderExperience()
	case section.Hobbies:
		body = p.renderHobbies()
	case section.Contact:
		body = p.renderContact()
	}
	// Leave room for the sticky header on the first rows.
	return "\n\n" + indent.String(body, sidePadding)
}

func (p *Page) heading(id string) string {
	d, _ := p.registry.Get(id)
	style := lipgloss.NewStyle().Foreground(p.theme.Iris).Bold(true)
	rule := lipgloss.NewStyle().Foreground(p.theme.Overlay).Render(strings.Repeat("─", p.textWidth()))
	return style.Render(fmt.Sprintf("%s  %s", d.Icon, strings.ToUpper(d.Label))) + "\n" + rule + "\n"
}

func (p *Page) text(s string) string {
	return lipgloss.NewStyle().Foreground(p.theme.Text).Render(wordwrap.String(s, p.textWidth()))
}

func (p *Page) muted(s string) string {
	return lipgloss.NewStyle().Foreground(p.theme.Subtle).Render(s)
}

func (p *Page) link(s string) string {
	return lipgloss.NewStyle().Foreground(p.theme.Pine).Underline(true).Render(s)
}

// markdown renders inline markdown with glamour, falling back to plain
// wrapping when the renderer fails.
func (p *Page) markdown(src string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(p.theme.GlamourStyle),
		glamour.WithWordWrap(p.textWidth()),
	)
	if err == nil {
		var out string
		out, err = r.Render(src)
		if err == nil {
			return strings.Trim(out, "\n")
		}
	}
	log.WarningLog.Printf("could not render markdown: %v", err)
	return p.text(src)
}

func (p *Page) renderHome() string {
	c := p.data.Contact
	now := p.now()

	var b strings.Builder
	title := lipgloss.NewStyle().Foreground(p.theme.Rose).Bold(true)
	b.WriteString(p.muted(p.data.Homepage.Title) + "\n\n")
	b.WriteString(title.Render(p.hero) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(p.theme.Foam).Render(c.Position))
	if c.Location != "" {
		b.WriteString(p.muted("  ·  " + c.Location))
	}
	b.WriteString("\n\n")

	var facts []string
	if age := content.Age(c.BirthDate, now); age > 0 {
		facts = append(facts, fmt.Sprintf("%d years old", age))
	}
	if years := content.YearsOfExperience(c.FirstJobDate, now); years > 0 {
		facts = append(facts, fmt.Sprintf("%d+ years of experience", years))
	}
	if len(facts) > 0 {
		b.WriteString(p.muted(strings.Join(facts, "  ·  ")) + "\n\n")
	}

	if len(p.data.Introduction) > 0 {
		b.WriteString(p.markdown(strings.Join(p.data.Introduction, "\n\n")) + "\n\n")
	}

	if tech := p.data.Technologies; len(tech.Items) > 0 {
		if tech.Description != "" {
			b.WriteString(p.text(tech.Description) + "\n")
		}
		chips := make([]string, 0, len(tech.Items))
		chip := lipgloss.NewStyle().Foreground(p.theme.Iris).Background(p.theme.Overlay).Padding(0, 1)
		for _, item := range tech.Items {
			chips = append(chips, chip.Render(item.Name))
		}
		b.WriteString(wrapJoined(chips, " ", p.textWidth()) + "\n\n")
	}

	for _, s := range p.data.Social {
		b.WriteString(fmt.Sprintf("%s %s\n", p.muted(s.Name+":"), p.link(s.URL)))
	}
	return b.String()
}

func (p *Page) renderProjects() string {
	var b strings.Builder
	b.WriteString(p.heading(section.Projects) + "\n")
	name := lipgloss.NewStyle().Foreground(p.theme.Text).Bold(true)
	tool := lipgloss.NewStyle().Foreground(p.theme.Foam)
	for _, pr := range p.data.Projects {
		b.WriteString(name.Render(pr.Title) + "  " + p.muted(joinNonEmpty("  ·  ", pr.City, pr.Period)) + "\n")
		if pr.Description != "" {
			b.WriteString(p.markdown(pr.Description) + "\n")
		}
		if len(pr.Tools) > 0 {
			b.WriteString(tool.Render(strings.Join(pr.Tools, " · ")) + "\n")
		}
		for _, l := range []struct{ label, url string }{
			{"site", pr.Website}, {"repo", pr.Repo}, {"video", pr.Video},
		} {
			if l.url != "" {
				b.WriteString(p.muted(l.label+": ") + p.link(l.url) + "\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (p *Page) renderExperience() string {
	var b strings.Builder
	now := p.now()
	b.WriteString(p.heading(section.Experience) + "\n")
	role := lipgloss.NewStyle().Foreground(p.theme.Text).Bold(true)
	company := lipgloss.NewStyle().Foreground(p.theme.Gold)
	bullet := lipgloss.NewStyle().Foreground(p.theme.Iris).Render("•")

	for _, e := range p.data.Experience {
		b.WriteString(role.Render(e.Position) + " @ " + company.Render(e.Company) + "\n")
		span := content.DateRange(e.StartDate, e.EndDate)
		if d := content.Duration(e.StartDate, e.EndDate, now); d != "" {
			span += " (" + d + ")"
		}
		b.WriteString(p.muted(joinNonEmpty("  ·  ", e.City, span)) + "\n")
		for _, r := range e.Responsibilities {
			wrapped := wordwrap.String(r, p.textWidth()-2)
			b.WriteString(bullet + " " + indentTail(p.text(wrapped), 2) + "\n")
		}
		b.WriteString("\n")
	}

	if len(p.data.Education) > 0 {
		b.WriteString(company.Render("Education") + "\n")
		for _, e := range p.data.Education {
			b.WriteString(role.Render(e.Position) + " @ " + e.Company + "  " + p.muted(joinNonEmpty("  ·  ", e.City, e.Period)) + "\n")
		}
		b.WriteString("\n")
	}
	if len(p.data.Certifications) > 0 {
		b.WriteString(company.Render("Certifications") + "\n")
		for _, c := range p.data.Certifications {
			b.WriteString(bullet + " " + c.Title + "  " + p.muted(c.Date) + "\n")
			if c.URL != "" {
				b.WriteString("  " + p.link(c.URL) + "\n")
			}
		}
	}
	return b.String()
}

func (p *Page) renderHobbies() string {
	var b strings.Builder
	b.WriteString(p.heading(section.Hobbies) + "\n")
	sub := lipgloss.NewStyle().Foreground(p.theme.Gold)
	if len(p.data.Photography) > 0 {
		b.WriteString(sub.Render("Photography") + "\n")
		for _, ph := range p.data.Photography {
			b.WriteString(fmt.Sprintf("%s  %s\n", p.text(ph.Alt), p.muted(fmt.Sprintf("%dx%d", ph.Width, ph.Height))))
			if ph.URL != "" {
				b.WriteString("  " + p.link(ph.URL) + "\n")
			}
		}
		b.WriteString("\n")
	}
	if len(p.data.Games) > 0 {
		b.WriteString(sub.Render("Games") + "\n")
		titles := make([]string, 0, len(p.data.Games))
		for _, g := range p.data.Games {
			titles = append(titles, g.Title)
		}
		b.WriteString(p.text(strings.Join(titles, " · ")) + "\n")
	}
	return b.String()
}

func (p *Page) renderContact() string {
	c := p.data.Contact
	var b strings.Builder
	b.WriteString(p.heading(section.Contact) + "\n")
	rows := []struct{ label, value string }{
		{"email", c.Email},
		{"phone", c.Phone},
		{"linkedin", c.LinkedIn},
		{"message", c.LinkedInMessaging},
		{"calendly", c.Calendly},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		b.WriteString(p.muted(fmt.Sprintf("%-10s", r.label)) + p.link(r.value) + "\n")
	}
	if p.data.Footer != "" {
		b.WriteString("\n" + p.muted(p.data.Footer) + "\n")
	}
	return b.String()
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, sep)
}

// indentTail indents every line after the first by n spaces.
func indentTail(s string, n int) string {
	lines := strings.Split(s, "\n")
	pad := strings.Repeat(" ", n)
	for i := 1; i < len(lines); i++ {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

// wrapJoined joins styled items with sep, breaking lines at width.
func wrapJoined(items []string, sep string, width int) string {
	var (
		lines []string
		cur   string
	)
	for _, it := range items {
		if cur != "" && lipgloss.Width(cur)+lipgloss.Width(sep)+lipgloss.Width(it) > width {
			lines = append(lines, cur)
			cur = ""
		}
		if cur != "" {
			cur += sep
		}
		cur += it
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}
