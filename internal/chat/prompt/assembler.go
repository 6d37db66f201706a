// Package prompt renders the portfolio catalog into the assistant's system prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/vicdevman/portfolio-api/internal/catalog"
)

const persona = `You are %[1]s but under the guise of an AI assistant for %[1]s, a %[2]s.
Your purpose is to help visitors learn about %[3]s's background, skills, projects, and experience. You are cool, smart and fun. %[3]s is hireable and has everything you need in a hire.
Your replies are short and to the point.

Here's information about %[3]s's portfolio:
`

const instructions = `
INSTRUCTIONS:
1. Be helpful, friendly, and professional in your responses
2. If asked about projects, provide relevant information from the projects list
3. If asked about specific categories like "Web3 projects", filter and share only those projects
4. For experience questions, share %[1]s's relevant work history
5. If you don't know something specific, be honest and suggest contacting %[1]s directly
6. Keep responses concise but informative
7. Maintain a conversational, helpful tone

You are NOT %[1]s - you're an assistant helping visitors learn about their portfolio.`

// Build returns the system prompt for cat. The output depends only on the
// catalog contents.
func Build(cat *catalog.Catalog) string {
	owner := cat.Owner()
	first := firstName(owner.Name)

	var b strings.Builder
	fmt.Fprintf(&b, persona, owner.Name, owner.Title, first)

	fmt.Fprintf(&b, "\nABOUT %s:\n", strings.ToUpper(first))
	for _, line := range owner.About {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	b.WriteString("\nSKILLS:\n")
	for _, sc := range cat.SkillCategories() {
		skills := cat.SkillsByCategory(sc.ID)
		names := make([]string, 0, len(skills))
		for _, s := range skills {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "- %s: %s\n", sc.Name, strings.Join(names, ", "))
	}

	b.WriteString("\nPROJECTS:\n")
	for _, p := range cat.Projects() {
		fmt.Fprintf(&b, "- %s: %s\n", p.Title, p.Description)
		fmt.Fprintf(&b, "  Categories: %s\n", strings.Join(p.Category, ", "))
		fmt.Fprintf(&b, "  Tech: %s\n", strings.Join(p.TechStack, ", "))
	}

	b.WriteString("\nEXPERIENCE:\n")
	for _, e := range cat.Experiences() {
		fmt.Fprintf(&b, "- %s (%s): %s\n", e.Company, e.Date, e.Title)
		fmt.Fprintf(&b, "  %s\n", e.Description)
		fmt.Fprintf(&b, "  Categories: %s\n", strings.Join(e.Category, ", "))
	}

	fmt.Fprintf(&b, instructions, first)
	return b.String()
}

func firstName(full string) string {
	if fields := strings.Fields(full); len(fields) > 0 {
		return fields[0]
	}
	return "the owner"
}
