package handlers

import (
	"errors"
	"net/http"

	"eventvote/internal/config"
	"eventvote/internal/models"
	"eventvote/internal/repository"
	"eventvote/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

// HTTPHandler holds the dependencies for the HTTP handlers.
type HTTPHandler struct {
	store      repository.Store
	voting     *services.VotingService
	candidates *services.CandidateService
	employees  *services.EmployeeService
	draw       *services.DrawService
	signer     *services.UploadSigner

	adminEmail    string
	adminPassword string
}

// NewHTTPHandler creates a new HTTPHandler and the services behind it.
func NewHTTPHandler(store repository.Store, cfg config.Config) *HTTPHandler {
	return &HTTPHandler{
		store:         store,
		voting:        services.NewVotingService(store),
		candidates:    services.NewCandidateService(store),
		employees:     services.NewEmployeeService(store),
		draw:          services.NewDrawService(store),
		signer:        services.NewUploadSigner(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret),
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
	}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *HTTPHandler) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())

	// Public routes (before middleware)
	h.RegisterPublicRoutes(r)

	// Admin routes behind the shared-secret header
	adminRoutes := r.Group("/api/admin")
	adminRoutes.Use(h.AdminMiddleware())
	h.RegisterAdminRoutes(adminRoutes)

	return r
}

// RegisterPublicRoutes registers the routes that need no admin secret.
func (h *HTTPHandler) RegisterPublicRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)

	api := router.Group("/api")
	api.GET("/candidates", h.ListCandidates)
	api.POST("/vote", h.CastVote)
	api.GET("/vote", h.VotedCandidates)
	api.DELETE("/vote", h.RetractVote)
	api.GET("/voting-status", h.GetVotingStatus)

	api.GET("/admin/candidates", h.ListCandidates)
	api.GET("/admin/voting", h.GetVotingStatus)
	api.POST("/admin/auth", h.AdminLogin)
	api.GET("/admin/employees", h.ListEmployees)
	api.POST("/admin/spin", h.Spin)
	api.GET("/admin/spin", h.ListWinners)
	api.GET("/admin/spin/export", h.ExportWinnersCSV)
	api.GET("/admin/prizes", h.ListPrizes)
}

// RegisterAdminRoutes registers the mutating admin routes on a group that
// already carries AdminMiddleware.
func (h *HTTPHandler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/voting", h.SetVotingStatus)

	admin.POST("/candidates", h.CreateCandidate)
	admin.DELETE("/candidates", h.DeleteCandidate)
	admin.POST("/candidates/bulk-delete", h.BulkDeleteCandidates)

	admin.POST("/employees", h.UploadEmployees)
	admin.DELETE("/employees", h.DeleteEmployees)
	admin.POST("/employees/csv", h.UploadEmployeesCSV)
	admin.POST("/employees/reset", h.ResetEmployees)

	admin.POST("/cloudinary-signature", h.UploadSignature)
}

// Health reports whether the backing store is reachable.
func (h *HTTPHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		logger.Warningf("health check failed: %v", err)
		c.String(http.StatusServiceUnavailable, "store unavailable")
		return
	}
	c.String(http.StatusOK, "OK")
}

func sendError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: message})
}

// respondError maps a service error to its HTTP status. Anything it does
// not recognise is logged and reported as a 500 with the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	var poolErr *services.InsufficientPoolError
	var quotaErr *services.QuotaExceededError

	switch {
	case errors.Is(err, services.ErrVotingClosed):
		sendError(c, http.StatusForbidden, "Voting is currently closed for this category")
	case errors.Is(err, services.ErrCandidateNotFound):
		sendError(c, http.StatusNotFound, "Candidate not found")
	case errors.As(err, &poolErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     poolErr.Error(),
			"requested": poolErr.Requested,
			"available": poolErr.Available,
			"shortfall": poolErr.Shortfall(),
		})
	case errors.As(err, &quotaErr):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error": quotaErr.Error(),
			"quota": quotaErr.Quota,
			"won":   quotaErr.Won,
		})
	case errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrNoIDs),
		errors.Is(err, services.ErrInvalidPrizeType),
		errors.Is(err, services.ErrInvalidCount),
		errors.Is(err, services.ErrInvalidCandidate),
		errors.Is(err, services.ErrNameTooLong):
		sendError(c, http.StatusBadRequest, err.Error())
	default:
		logger.Errorf("%s: %v", fallback, err)
		sendError(c, http.StatusInternalServerError, fallback)
	}
}
