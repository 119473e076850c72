package cv2pdf

import (
	"strings"

	"github.com/alnah/go-cv2pdf/internal/dateutil"
)

// Section names, in render order.
const (
	SectionHeader     = "header"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionSkills     = "skills"
	SectionEducation  = "education"
)

// Section is one assembled block of the document.
// Markdown is empty when the CV has no content for the section.
type Section struct {
	Name     string
	Markdown string
}

// Sections is the ordered output of Assemble.
type Sections []Section

// Markdown joins the non-empty sections into a single markdown document.
// Empty sections are skipped so missing content never produces blank
// headings or stray separators.
func (s Sections) Markdown() string {
	var parts []string
	for _, sec := range s {
		if sec.Markdown == "" {
			continue
		}
		parts = append(parts, sec.Markdown)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Assemble builds the ordered document sections from a CV.
// The output is pure and deterministic: same CV and present label, same
// sections. Always returns all five sections in fixed order; sections
// without content carry an empty Markdown so callers can still inspect
// them by position.
//
// Entry order within a section is preserved from the input. Entries are
// never re-sorted; the author decides what "most recent first" means.
func Assemble(cv *CV, presentLabel string) Sections {
	if presentLabel == "" {
		presentLabel = DefaultPresentLabel
	}

	return Sections{
		{Name: SectionHeader, Markdown: assembleHeader(cv)},
		{Name: SectionSummary, Markdown: assembleSummary(cv)},
		{Name: SectionExperience, Markdown: assembleExperience(cv, presentLabel)},
		{Name: SectionSkills, Markdown: assembleSkills(cv)},
		{Name: SectionEducation, Markdown: assembleEducation(cv, presentLabel)},
	}
}

// assembleHeader renders the name, headline, and contact line.
func assembleHeader(cv *CV) string {
	if cv == nil {
		return ""
	}

	var b strings.Builder

	name := strings.TrimSpace(cv.Contact.Name)
	if name != "" {
		b.WriteString("# ")
		b.WriteString(name)
	}

	if headline := cv.Headline(); headline != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(headline)
	}

	if contact := contactLine(cv.Contact); contact != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(contact)
	}

	return b.String()
}

// contactLine joins location, email, phone, and links with middle dots.
// Empty fields are skipped.
func contactLine(c Contact) string {
	var parts []string
	if c.Location != "" {
		parts = append(parts, c.Location)
	}
	if c.Email != "" {
		parts = append(parts, "["+c.Email+"](mailto:"+c.Email+")")
	}
	if c.Phone != "" {
		parts = append(parts, c.Phone)
	}
	for _, l := range c.Links {
		if l.URL == "" {
			continue
		}
		label := l.Label
		if label == "" {
			label = l.URL
		}
		parts = append(parts, "["+label+"]("+l.URL+")")
	}
	return strings.Join(parts, " · ")
}

// assembleSummary renders the professional summary paragraph.
func assembleSummary(cv *CV) string {
	if cv == nil || strings.TrimSpace(cv.Summary) == "" {
		return ""
	}
	return "## Summary\n\n" + strings.TrimSpace(cv.Summary)
}

// assembleExperience renders every experience entry in input order.
// Highlights pass through verbatim; no rewriting, truncation, or
// re-punctuation happens here.
func assembleExperience(cv *CV, presentLabel string) string {
	if cv == nil || len(cv.Experience) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Experience")

	for _, e := range cv.Experience {
		b.WriteString("\n\n")
		b.WriteString(experienceHeading(e))

		if meta := entryMetaLine(dateutil.FormatRange(e.Start, e.End, presentLabel), e.Location); meta != "" {
			b.WriteString("\n\n")
			b.WriteString(meta)
		}

		if s := strings.TrimSpace(e.Summary); s != "" {
			b.WriteString("\n\n")
			b.WriteString(s)
		}

		if len(e.Highlights) > 0 {
			b.WriteString("\n")
			for _, h := range e.Highlights {
				b.WriteString("\n- ")
				b.WriteString(h)
			}
		}
	}

	return b.String()
}

// experienceHeading renders "### Title — Organization", degrading
// gracefully when either part is missing.
func experienceHeading(e ExperienceEntry) string {
	switch {
	case e.Title != "" && e.Organization != "":
		return "### " + e.Title + " — " + e.Organization
	case e.Title != "":
		return "### " + e.Title
	case e.Organization != "":
		return "### " + e.Organization
	}
	return "###"
}

// entryMetaLine renders the italic date and location line under an
// entry heading, e.g. "*Sept 2020 – present · Remote*".
func entryMetaLine(dates, location string) string {
	var parts []string
	if dates != "" {
		parts = append(parts, dates)
	}
	if location != "" {
		parts = append(parts, location)
	}
	if len(parts) == 0 {
		return ""
	}
	return "*" + strings.Join(parts, " · ") + "*"
}

// assembleSkills renders one bullet per skill group, preserving both
// group order and skill order from the input.
func assembleSkills(cv *CV) string {
	if cv == nil || len(cv.Skills) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Skills\n")

	for _, g := range cv.Skills {
		b.WriteString("\n- ")
		if g.Category != "" {
			b.WriteString("**")
			b.WriteString(g.Category)
			b.WriteString(":** ")
		}
		b.WriteString(strings.Join(g.Skills, ", "))
	}

	return b.String()
}

// assembleEducation renders every education entry in input order.
func assembleEducation(cv *CV, presentLabel string) string {
	if cv == nil || len(cv.Education) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Education")

	for _, e := range cv.Education {
		b.WriteString("\n\n### ")
		b.WriteString(e.Institution)

		meta := entryMetaLine(dateutil.FormatRange(e.Start, e.End, presentLabel), e.Location)
		if degree := degreeLine(e); degree != "" {
			if meta == "" {
				meta = "*" + degree + "*"
			} else {
				meta = "*" + degree + " · " + strings.Trim(meta, "*") + "*"
			}
		}
		if meta != "" {
			b.WriteString("\n\n")
			b.WriteString(meta)
		}
	}

	return b.String()
}

// degreeLine renders "BS in Computer Science" style degree text.
func degreeLine(e EducationEntry) string {
	switch {
	case e.Degree != "" && e.Area != "":
		return e.Degree + " in " + e.Area
	case e.Degree != "":
		return e.Degree
	case e.Area != "":
		return e.Area
	}
	return ""
}
