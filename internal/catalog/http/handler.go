package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vicdevman/portfolio-api/internal/catalog"
	"github.com/vicdevman/portfolio-api/internal/catalog/domain"
)

// Handler serves read-only catalog lookups.
type Handler struct {
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog) *Handler {
	return &Handler{cat: cat}
}

// Register attaches catalog routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/project/:id", h.getProject)
	rg.GET("/experience/:id", h.getExperience)
	rg.GET("/skill/:id", h.getSkill)

	rg.GET("/projects", h.listProjects)
	rg.GET("/experiences", h.listExperiences)
	rg.GET("/skills", h.listSkills)
	rg.GET("/skill-categories", h.listSkillCategories)
	rg.GET("/owner", h.getOwner)
}

func (h *Handler) getProject(c *gin.Context) {
	p, ok := h.cat.ProjectByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) getExperience(c *gin.Context) {
	e, ok := h.cat.ExperienceByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) getSkill(c *gin.Context) {
	s, ok := h.cat.SkillByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) listProjects(c *gin.Context) {
	var items []domain.Project
	switch group := c.Query("group"); group {
	case "":
		items = h.cat.Projects()
	case "web3":
		items = h.cat.Web3Projects()
	case "ai":
		items = h.cat.AIProjects()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown group " + group})
		return
	}

	if category := c.Query("category"); category != "" {
		items = slices.DeleteFunc(items, func(p domain.Project) bool { return !p.HasCategory(category) })
	}
	if featuredOnly(c) {
		items = slices.DeleteFunc(items, func(p domain.Project) bool { return !p.Featured })
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) listExperiences(c *gin.Context) {
	var items []domain.Experience
	switch group := c.Query("group"); group {
	case "":
		items = h.cat.Experiences()
	case "web3":
		items = h.cat.Web3Experiences()
	case "ai":
		items = h.cat.AIExperiences()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown group " + group})
		return
	}

	if category := c.Query("category"); category != "" {
		items = slices.DeleteFunc(items, func(e domain.Experience) bool { return !e.HasCategory(category) })
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) listSkills(c *gin.Context) {
	items := h.cat.Skills()
	if category := c.Query("category"); category != "" {
		items = slices.DeleteFunc(items, func(s domain.Skill) bool { return !s.HasCategory(category) })
	}
	if featuredOnly(c) {
		items = slices.DeleteFunc(items, func(s domain.Skill) bool { return !s.Featured })
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) listSkillCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.cat.SkillCategories())
}

func (h *Handler) getOwner(c *gin.Context) {
	c.JSON(http.StatusOK, h.cat.Owner())
}

func featuredOnly(c *gin.Context) bool {
	v := strings.ToLower(strings.TrimSpace(c.Query("featured")))
	return v == "true" || v == "1"
}
