package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BhavyNayak/stackit/internal/domain"
	"github.com/BhavyNayak/stackit/internal/service"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=guest user admin"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=guest user admin"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "user registered", userToResponse(*user))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "login successful", gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (h *Handler) me(c *gin.Context) {
	respond(c, http.StatusOK, "current user", userToResponse(*currentUser(c)))
}

func (h *Handler) listUsers(c *gin.Context) {
	skip, limit := pagination(c)
	users, err := h.users.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	respond(c, http.StatusOK, "users", resp)
}

func (h *Handler) listUsersByRole(c *gin.Context) {
	role := domain.Role(c.Param("role"))
	if !role.Valid() {
		respondBadRequest(c, "invalid role")
		return
	}

	skip, limit := pagination(c)
	users, err := h.users.ListByRole(c.Request.Context(), role, skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	respond(c, http.StatusOK, "users", resp)
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "user", userToResponse(*user))
}

// updateUser lets a user edit their own account; admins may edit anyone.
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	actor := currentUser(c)
	if actor.ID != id && actor.Role != domain.RoleAdmin {
		respond(c, http.StatusForbidden, "you can only update your own account", nil)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	input := service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
	}
	if req.Role != nil {
		// roles are assigned by admins, never self-granted
		if actor.Role != domain.RoleAdmin {
			respond(c, http.StatusForbidden, "admin role required to change roles", nil)
			return
		}
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.users.Update(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "user updated", userToResponse(*user))
}

// deleteUser is admin only; the user's questions and answers go with them.
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if currentUser(c).Role != domain.RoleAdmin {
		respond(c, http.StatusForbidden, "admin role required", nil)
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "user deleted", nil)
}
