package controllers

import (
	"net/http"

	"Gin_postgres_library_management/app"
	"Gin_postgres_library_management/db"
	"Gin_postgres_library_management/models"

	"github.com/gin-gonic/gin"
)

type MemberController struct{ *Srv }

func NewMemberController(s *Srv) *MemberController { return &MemberController{Srv: s} }

// GET /api/members?q=
func (mc *MemberController) ListMembers(c *gin.Context) {
	members, err := mc.Repo.ListMembers(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GET /api/members/:id
func (mc *MemberController) GetMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	member, err := mc.Repo.FindMemberByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// POST /api/members
func (mc *MemberController) CreateMember(c *gin.Context) {
	var in struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !checkLen(c, "name", in.Name, maxNameLen) ||
		!checkLen(c, "email", in.Email, maxEmailLen) {
		return
	}

	member := &models.Member{Name: in.Name, Email: in.Email}
	if err := mc.Repo.CreateMember(c.Request.Context(), member); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Member created successfully", "member": member})
}

// PUT /api/members/:id
func (mc *MemberController) UpdateMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var upd db.MemberUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if upd.Name != nil && !checkLen(c, "name", *upd.Name, maxNameLen) {
		return
	}
	if upd.Email != nil && !checkLen(c, "email", *upd.Email, maxEmailLen) {
		return
	}

	member, err := mc.Repo.UpdateMember(c.Request.Context(), id, upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Member updated successfully", "member": member})
}

// DELETE /api/members/:id: blocked on outstanding debt or open loans.
func (mc *MemberController) DeleteMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := mc.Engine.DeleteMember(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Member deleted successfully"})
}
