package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vivaha-events/backend/internal/access"
	"github.com/vivaha-events/backend/internal/middleware"
	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/pkg/response"
	"github.com/vivaha-events/backend/pkg/utils"
)

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"` // optional, defaults to couple
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SwitchRoleRequest is the body for PUT /auth/role.
type SwitchRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// TokenResponse is the auth response with JWT and the home route for the
// user's role, so clients can land on the right dashboard directly.
type TokenResponse struct {
	Token    string            `json:"token"`
	User     models.UserPublic `json:"user"`
	HomePath string            `json:"home_path"`
}

// Handler handles auth HTTP endpoints.
type Handler struct {
	repo     *Repository
	roles    *RoleStore
	resolver *Resolver
	jwt      *JWTService
	logger   *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(repo *Repository, roles *RoleStore, resolver *Resolver, jwt *JWTService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, roles: roles, resolver: resolver, jwt: jwt, logger: logger}
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	role := models.RoleCouple
	if req.Role != "" {
		if !models.ValidRole(req.Role) {
			response.BadRequest(c, "invalid role")
			return
		}
		role = models.Role(req.Role)
	}

	if _, err := h.repo.GetByEmail(c.Request.Context(), req.Email); err == nil {
		response.BadRequest(c, "email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "failed to hash password")
		return
	}

	user, err := h.repo.Create(c.Request.Context(), req.Email, hash, req.FullName, role)
	if err != nil {
		h.logger.Error("create user failed", zap.Error(err))
		response.FromError(c, err)
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email)
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}

	response.Created(c, TokenResponse{Token: token, User: user.ToPublic(role), HomePath: access.RoleHome(role)})
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.repo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	role, err := h.roles.Get(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("role lookup failed", zap.Error(err))
		response.FromError(c, err)
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email)
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}

	response.OK(c, TokenResponse{Token: token, User: user.ToPublic(role), HomePath: access.RoleHome(role)})
}

// Session handles GET /auth/session. Resolves the presented bearer token
// into a principal and role; an expired or orphaned token hints a redirect
// to /auth instead of failing opaquely.
func (h *Handler) Session(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.FromError(c, models.ErrSessionExpired)
		return
	}

	sess, err := h.resolver.Resolve(c.Request.Context(), parts[1])
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"user": sess.User.ToPublic(sess.Role), "home_path": access.RoleHome(sess.Role)})
}

// SwitchRole handles PUT /auth/role. An explicit role mutation, not a
// natural lifecycle event; it rewrites user_roles and drops the role cache.
func (h *Handler) SwitchRole(c *gin.Context) {
	var req SwitchRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !models.ValidRole(req.Role) {
		response.BadRequest(c, "invalid role")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	role := models.Role(req.Role)
	if err := h.roles.Switch(c.Request.Context(), userID, role); err != nil {
		h.logger.Error("switch role failed", zap.Error(err), zap.String("user_id", userID.String()))
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"role": role, "home_path": access.RoleHome(role)})
}

// EvaluateArea handles GET /access/evaluate?area=. Returns the guard's
// decision for the caller's session so clients can route before rendering.
func (h *Handler) EvaluateArea(c *gin.Context) {
	area := c.Query("area")
	if area == "" {
		response.BadRequest(c, "area required")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	role, err := h.roles.Get(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	d := access.Evaluate(access.State{
		SessionLoaded: true,
		Principal:     &userID,
		RoleLoaded:    true,
		Role:          role,
	}, access.AllowedRoles(area))

	switch d.Kind {
	case access.Allow:
		response.OK(c, gin.H{"decision": "allow"})
	case access.Redirect:
		response.OK(c, gin.H{"decision": "redirect", "redirect_to": d.Target})
	default:
		response.OK(c, gin.H{"decision": "pending"})
	}
}

// List handles GET /admin/users. Returns platform users with roles.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, list)
}
