// Package domain holds the read-only portfolio content records.
package domain

import "slices"

// Project is a portfolio project.
type Project struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Image           string   `json:"image" yaml:"image"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"longDescription,omitempty" yaml:"long_description"`
	TechStack       []string `json:"techStack" yaml:"tech_stack"`
	Link            string   `json:"link" yaml:"link"`
	GithubLink      string   `json:"githubLink,omitempty" yaml:"github_link"`
	DemoLink        string   `json:"demoLink,omitempty" yaml:"demo_link"`
	Category        []string `json:"category" yaml:"category"`
	Featured        bool     `json:"featured" yaml:"featured"`
	// CompletionDate is a year-month string, e.g. "2024-06".
	CompletionDate string `json:"completionDate" yaml:"completion_date"`
	Role           string `json:"role,omitempty" yaml:"role"`
}

// Experience is a work history entry.
type Experience struct {
	ID              string   `json:"id" yaml:"id"`
	Date            string   `json:"date" yaml:"date"`
	Company         string   `json:"company" yaml:"company"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"longDescription,omitempty" yaml:"long_description"`
	TechStack       []string `json:"techStack" yaml:"tech_stack"`
	Link            string   `json:"link" yaml:"link"`
	Location        string   `json:"location,omitempty" yaml:"location"`
	Achievements    []string `json:"achievements,omitempty" yaml:"achievements"`
	Category        []string `json:"category,omitempty" yaml:"category"`
}

// Skill is a single skill with a 1-5 proficiency.
type Skill struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	Icon              string   `json:"icon,omitempty" yaml:"icon"`
	Description       string   `json:"description" yaml:"description"`
	Proficiency       int      `json:"proficiency" yaml:"proficiency"`
	Category          []string `json:"category" yaml:"category"`
	YearsOfExperience *int     `json:"yearsOfExperience,omitempty" yaml:"years_of_experience"`
	Featured          bool     `json:"featured" yaml:"featured"`
}

type SkillCategory struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon"`
}

type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Owner describes the person the portfolio belongs to.
type Owner struct {
	Name  string   `json:"name" yaml:"name"`
	Title string   `json:"title" yaml:"title"`
	About []string `json:"about" yaml:"about"`
	Links []Link   `json:"links,omitempty" yaml:"links"`
}

// HasCategory reports whether tag is one of the project's categories.
func (p Project) HasCategory(tag string) bool { return slices.Contains(p.Category, tag) }

func (e Experience) HasCategory(tag string) bool { return slices.Contains(e.Category, tag) }

func (s Skill) HasCategory(tag string) bool { return slices.Contains(s.Category, tag) }

// Clone returns a copy that shares no slices with p.
func (p Project) Clone() Project {
	p.TechStack = slices.Clone(p.TechStack)
	p.Category = slices.Clone(p.Category)
	return p
}

func (e Experience) Clone() Experience {
	e.TechStack = slices.Clone(e.TechStack)
	e.Achievements = slices.Clone(e.Achievements)
	e.Category = slices.Clone(e.Category)
	return e
}

func (s Skill) Clone() Skill {
	s.Category = slices.Clone(s.Category)
	if s.YearsOfExperience != nil {
		y := *s.YearsOfExperience
		s.YearsOfExperience = &y
	}
	return s
}

func (o Owner) Clone() Owner {
	o.About = slices.Clone(o.About)
	o.Links = slices.Clone(o.Links)
	return o
}
