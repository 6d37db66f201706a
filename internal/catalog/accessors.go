package catalog

import (
	"slices"

	"github.com/vicdevman/portfolio-api/internal/catalog/domain"
)

// Category groups used by the portfolio pages. Projects and experiences use
// slightly different tag sets.
var (
	Web3ProjectTags    = []string{"Web3", "Blockchain", "DeFi", "NFT"}
	AIProjectTags      = []string{"AI"}
	Web3ExperienceTags = []string{"Blockchain", "Web3", "DeFi"}
	AIExperienceTags   = []string{"AI", "Machine Learning"}
)

func (c *Catalog) Owner() domain.Owner { return c.owner.Clone() }

func (c *Catalog) Projects() []domain.Project {
	return filterProjects(c.projects, func(domain.Project) bool { return true })
}

// ProjectByID returns the project with the given id, or false.
func (c *Catalog) ProjectByID(id string) (domain.Project, bool) {
	i, ok := c.projectIdx[id]
	if !ok {
		return domain.Project{}, false
	}
	return c.projects[i].Clone(), true
}

// ProjectsByCategory returns projects tagged with category, in catalog order.
func (c *Catalog) ProjectsByCategory(category string) []domain.Project {
	return filterProjects(c.projects, func(p domain.Project) bool { return p.HasCategory(category) })
}

// ProjectsInAnyCategory returns projects tagged with at least one of tags.
func (c *Catalog) ProjectsInAnyCategory(tags ...string) []domain.Project {
	return filterProjects(c.projects, func(p domain.Project) bool { return anyTag(p.Category, tags) })
}

func (c *Catalog) FeaturedProjects() []domain.Project {
	return filterProjects(c.projects, func(p domain.Project) bool { return p.Featured })
}

func (c *Catalog) Web3Projects() []domain.Project { return c.ProjectsInAnyCategory(Web3ProjectTags...) }

func (c *Catalog) AIProjects() []domain.Project { return c.ProjectsInAnyCategory(AIProjectTags...) }

func (c *Catalog) Experiences() []domain.Experience {
	return filterExperiences(c.experiences, func(domain.Experience) bool { return true })
}

// ExperienceByID returns the experience with the given id, or false.
func (c *Catalog) ExperienceByID(id string) (domain.Experience, bool) {
	i, ok := c.experienceIdx[id]
	if !ok {
		return domain.Experience{}, false
	}
	return c.experiences[i].Clone(), true
}

func (c *Catalog) ExperiencesByCategory(category string) []domain.Experience {
	return filterExperiences(c.experiences, func(e domain.Experience) bool { return e.HasCategory(category) })
}

func (c *Catalog) ExperiencesInAnyCategory(tags ...string) []domain.Experience {
	return filterExperiences(c.experiences, func(e domain.Experience) bool { return anyTag(e.Category, tags) })
}

func (c *Catalog) Web3Experiences() []domain.Experience {
	return c.ExperiencesInAnyCategory(Web3ExperienceTags...)
}

func (c *Catalog) AIExperiences() []domain.Experience {
	return c.ExperiencesInAnyCategory(AIExperienceTags...)
}

func (c *Catalog) Skills() []domain.Skill {
	return filterSkills(c.skills, func(domain.Skill) bool { return true })
}

func (c *Catalog) SkillByID(id string) (domain.Skill, bool) {
	i, ok := c.skillIdx[id]
	if !ok {
		return domain.Skill{}, false
	}
	return c.skills[i].Clone(), true
}

// SkillsByCategory returns skills tagged with the skill category id.
func (c *Catalog) SkillsByCategory(categoryID string) []domain.Skill {
	return filterSkills(c.skills, func(s domain.Skill) bool { return s.HasCategory(categoryID) })
}

func (c *Catalog) FeaturedSkills() []domain.Skill {
	return filterSkills(c.skills, func(s domain.Skill) bool { return s.Featured })
}

func (c *Catalog) SkillCategories() []domain.SkillCategory {
	return append([]domain.SkillCategory{}, c.skillCategories...)
}

func anyTag(have, want []string) bool {
	for _, t := range want {
		if slices.Contains(have, t) {
			return true
		}
	}
	return false
}

func filterProjects(in []domain.Project, keep func(domain.Project) bool) []domain.Project {
	out := []domain.Project{}
	for _, p := range in {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func filterExperiences(in []domain.Experience, keep func(domain.Experience) bool) []domain.Experience {
	out := []domain.Experience{}
	for _, e := range in {
		if keep(e) {
			out = append(out, e.Clone())
		}
	}
	return out
}

func filterSkills(in []domain.Skill, keep func(domain.Skill) bool) []domain.Skill {
	out := []domain.Skill{}
	for _, s := range in {
		if keep(s) {
			out = append(out, s.Clone())
		}
	}
	return out
}
