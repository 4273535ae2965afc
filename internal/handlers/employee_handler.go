package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"employee-directory/internal/middleware"
	"employee-directory/internal/models"
	"employee-directory/internal/store"
)

type EmployeeHandler struct {
	store *store.Store
}

func NewEmployeeHandler(s *store.Store) *EmployeeHandler {
	return &EmployeeHandler{store: s}
}

// POST /employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in models.CreateEmployeeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	emp, persisted := h.store.Create(c.Request.Context(), in.Employee())
	if !persisted {
		log.Printf("employee %d kept in memory only (request %s)", emp.ID, c.GetString(middleware.RequestIDKey))
	}
	c.JSON(http.StatusCreated, gin.H{"id": emp.ID})
}

// GET /employees?name=&fromSalary=&toSalary=
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var f store.Filter
	if v, ok := c.GetQuery("name"); ok {
		f.Name = &v
	}
	var err error
	if f.MinSalary, err = floatQuery(c, "fromSalary"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromSalary must be a number"})
		return
	}
	if f.MaxSalary, err = floatQuery(c, "toSalary"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "toSalary must be a number"})
		return
	}
	c.JSON(http.StatusOK, h.store.List(f))
}

// GET /employees/:id
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}
	emp, err := h.store.FindByID(id)
	if errors.Is(err, store.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, emp)
}

// floatQuery treats a missing or empty parameter as unset.
func floatQuery(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
