package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jagankumaroffl/todo-task-management/internal/auth"
	dom "github.com/jagankumaroffl/todo-task-management/internal/domain"
	"github.com/jagankumaroffl/todo-task-management/internal/dto"
	"github.com/jagankumaroffl/todo-task-management/internal/service"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), service.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    dom.Priority(req.Priority),
		DueDate:     req.DueDate.Ptr(),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromTodo(t))
}

// List godoc
// @Summary      List visible todos (owned + shared) with filters and sort
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        status      query  string  false  "Filter by status"    Enums(todo, in-progress, completed)
// @Param        priority    query  string  false  "Filter by priority"  Enums(low, medium, high)
// @Param        sort_by     query  string  false  "Sort field"          Enums(dueDate, priority, createdAt)
// @Param        sort_order  query  string  false  "Sort order"          Enums(asc, desc)
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	filter, ok := parseListFilter(c)
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTodosResponse{Items: dto.FromTodos(list)})
}

// DueToday godoc
// @Summary      List own todos due within the current day
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos/due-today [get]
func (h *TodoHandler) DueToday(c *gin.Context) {
	list, err := h.svc.DueToday(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTodosResponse{Items: dto.FromTodos(list)})
}

// Overdue godoc
// @Summary      List own todos past their due date and not completed
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos/overdue [get]
func (h *TodoHandler) Overdue(c *gin.Context) {
	list, err := h.svc.Overdue(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTodosResponse{Items: dto.FromTodos(list)})
}

// Search godoc
// @Summary      Search own todos by title prefix
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        q    query     string  true  "Search term"
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos/search [get]
func (h *TodoHandler) Search(c *gin.Context) {
	list, err := h.svc.Search(c.Request.Context(), auth.UserIDFromContext(c), c.Query("q"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTodosResponse{Items: dto.FromTodos(list)})
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromTodo(t))
}

// Update godoc
// @Summary      Update a todo (partial)
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string  true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "Partial update"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /todos/{id} [patch]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := service.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		st := dom.Status(*req.Status)
		in.Status = &st
	}
	if req.Priority != nil {
		p := dom.Priority(*req.Priority)
		in.Priority = &p
	}
	if req.DueDate != nil {
		in.DueDate = req.DueDate.Ptr()
	}
	t, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromTodo(t))
}

// Delete godoc
// @Summary      Delete a todo (owner only)
// @Tags         todos
// @Security     CookieAuth
// @Param        id   path  string  true  "Todo ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Share godoc
// @Summary      Share a todo with another user by email (owner only)
// @Tags         todos
// @Accept       json
// @Security     CookieAuth
// @Param        id    path  string                true  "Todo ID"
// @Param        body  body  dto.ShareTodoRequest  true  "Share target"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /todos/{id}/share [post]
func (h *TodoHandler) Share(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ShareTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Share(c.Request.Context(), auth.UserIDFromContext(c), id, req.Email); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseListFilter(c *gin.Context) (service.ListFilter, bool) {
	var f service.ListFilter
	if raw := c.Query("status"); raw != "" {
		st := dom.Status(raw)
		if !st.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return f, false
		}
		f.Status = &st
	}
	if raw := c.Query("priority"); raw != "" {
		p := dom.Priority(raw)
		if !p.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid priority"})
			return f, false
		}
		f.Priority = &p
	}
	if raw := c.Query("sort_by"); raw != "" {
		by := service.SortField(raw)
		if !by.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort_by"})
			return f, false
		}
		f.SortBy = by
	}
	switch c.Query("sort_order") {
	case "", "asc":
	case "desc":
		f.Desc = true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort_order"})
		return f, false
	}
	return f, true
}

// writeServiceError maps service sentinels to HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrSelfShare):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyShared):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
