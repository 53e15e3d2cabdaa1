package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salon-admin/internal/model"
	"salon-admin/internal/service"
)

var errNotFound = errors.New("not found")

// Handlers holds the admin panel's route handlers.
type Handlers struct {
	users   *service.UserService
	catalog *service.ServiceCatalog
}

func NewHandlers(users *service.UserService, catalog *service.ServiceCatalog) *Handlers {
	return &Handlers{users: users, catalog: catalog}
}

type createUserRequest struct {
	ID        int64  `json:"id" binding:"required,gte=0"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type updateUserForm struct {
	Username  string `form:"username" binding:"required"`
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	IsAdmin   bool   `form:"is_admin"`
}

type serviceForm struct {
	Name     string `form:"service_name" binding:"required"`
	Cost     int    `form:"service_cost" binding:"min=0"`
	Duration int    `form:"service_time" binding:"min=0"`
}

// AddUser registers a user under its Telegram id. Registration is
// idempotent: a repeated id answers 400 with the stored record instead of a
// duplicate row.
func (h *Handlers) AddUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload: " + err.Error()})
		return
	}

	user, existed, err := h.users.Register(c.Request.Context(), req.ID, req.Username, req.FirstName, req.LastName)
	if err != nil {
		h.storageError(c, err)
		return
	}

	status := http.StatusOK
	message := "registration complete"
	if existed {
		status = http.StatusBadRequest
		message = "user already registered"
	}
	c.JSON(status, gin.H{
		"message":    message,
		"id":         user.ID,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}

func (h *Handlers) ListUsers(c *gin.Context) {
	h.adminPage(c, "users.html", func(ctx context.Context) (gin.H, error) {
		users, err := h.users.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return gin.H{"title": "Users", "users": users}, nil
	})
}

func (h *Handlers) EditUserForm(c *gin.Context) {
	h.adminPage(c, "user_edit.html", func(ctx context.Context) (gin.H, error) {
		id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
		if err != nil {
			return nil, errNotFound
		}
		user, err := h.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, errNotFound
		}
		return gin.H{"title": "Edit user", "user": user}, nil
	})
}

// UpdateUser saves the submitted profile fields onto an existing user and
// redirects back to the listing. Both the caller and the target must
// resolve; there is no conflict detection, the last writer wins.
func (h *Handlers) UpdateUser(c *gin.Context) {
	caller, ok := h.requireAdmin(c)
	if !ok {
		return
	}

	targetID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return
	}
	target, err := h.users.GetByID(c.Request.Context(), targetID)
	if err != nil {
		h.storageError(c, err)
		return
	}
	if target == nil {
		h.notFound(c)
		return
	}

	var form updateUserForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid form: " + err.Error()})
		return
	}

	if err := h.users.UpdateProfile(c.Request.Context(), target, form.Username, form.FirstName, form.LastName, form.IsAdmin); err != nil {
		h.storageError(c, err)
		return
	}

	c.Redirect(http.StatusMovedPermanently, fmt.Sprintf("/api/v1/users?cur_user_id=%d", caller.ID))
}

func (h *Handlers) ListServices(c *gin.Context) {
	h.adminPage(c, "services.html", func(ctx context.Context) (gin.H, error) {
		services, err := h.catalog.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return gin.H{"title": "Services", "services": services}, nil
	})
}

func (h *Handlers) AddServiceForm(c *gin.Context) {
	h.adminPage(c, "service_add.html", func(ctx context.Context) (gin.H, error) {
		return gin.H{"title": "Add service"}, nil
	})
}

func (h *Handlers) AddService(c *gin.Context) {
	caller, ok := h.requireAdmin(c)
	if !ok {
		return
	}

	var form serviceForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid form: " + err.Error()})
		return
	}

	if _, err := h.catalog.Add(c.Request.Context(), form.Name, form.Cost, form.Duration); err != nil {
		h.storageError(c, err)
		return
	}

	c.Redirect(http.StatusMovedPermanently, fmt.Sprintf("/api/v1/services?cur_user_id=%d", caller.ID))
}

func (h *Handlers) EditServiceForm(c *gin.Context) {
	h.adminPage(c, "service_edit.html", func(ctx context.Context) (gin.H, error) {
		svc, err := h.serviceFromPath(ctx, c)
		if err != nil {
			return nil, err
		}
		return gin.H{"title": "Edit service", "service": svc}, nil
	})
}

func (h *Handlers) UpdateService(c *gin.Context) {
	caller, ok := h.requireAdmin(c)
	if !ok {
		return
	}

	svc, err := h.serviceFromPath(c.Request.Context(), c)
	if errors.Is(err, errNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.storageError(c, err)
		return
	}

	var form serviceForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid form: " + err.Error()})
		return
	}

	if err := h.catalog.UpdateDetails(c.Request.Context(), svc, form.Name, form.Cost, form.Duration); err != nil {
		h.storageError(c, err)
		return
	}

	c.Redirect(http.StatusMovedPermanently, fmt.Sprintf("/api/v1/services?cur_user_id=%d", caller.ID))
}

// requireAdmin resolves cur_user_id and enforces the admin flag. An unknown
// caller gets 401, a known non-admin 403; both receive the same body shape.
func (h *Handlers) requireAdmin(c *gin.Context) (*model.User, bool) {
	id, err := strconv.ParseInt(c.Query("cur_user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "access denied"})
		return nil, false
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.storageError(c, err)
		return nil, false
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "access denied"})
		return nil, false
	}
	if !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "access denied"})
		return nil, false
	}
	return user, true
}

// adminPage runs the authorize → fetch → render sequence shared by every
// admin-only page. fetch supplies the template data for the given view.
func (h *Handlers) adminPage(c *gin.Context, view string, fetch func(ctx context.Context) (gin.H, error)) {
	caller, ok := h.requireAdmin(c)
	if !ok {
		return
	}

	data, err := fetch(c.Request.Context())
	if errors.Is(err, errNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.storageError(c, err)
		return
	}

	data["cur_user_id"] = caller.ID
	c.HTML(http.StatusOK, view, data)
}

func (h *Handlers) serviceFromPath(ctx context.Context, c *gin.Context) (*model.Service, error) {
	id, err := strconv.ParseUint(c.Param("service_id"), 10, 64)
	if err != nil {
		return nil, errNotFound
	}
	svc, err := h.catalog.GetByID(ctx, uint(id))
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errNotFound
	}
	return svc, nil
}

func (h *Handlers) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
}

func (h *Handlers) storageError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
}
