package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
)

type HealthHandler struct {
	db  *gorm.DB // nil with the memory driver
	cfg *config.Config
}

func NewHealthHandler(db *gorm.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg}
}

type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	Driver           string   `json:"driver"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"collections"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Barber Booking API running"})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Test reports backend and database status. It always answers 200; failures
// show up in the body.
func (h *HealthHandler) Test(c *gin.Context) {
	resp := DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		Driver:           h.cfg.DBDriver,
		ConnectionStatus: "not connected",
		Tables:           []string{},
		DatabaseURL:      setOrNot(h.cfg.DBDriver == config.DriverPostgres && h.cfg.DBUrl != ""),
		DatabaseName:     setOrNot(h.cfg.DatabaseName != ""),
	}

	if h.db == nil {
		resp.Database = "in-memory"
		resp.ConnectionStatus = "connected"
		c.JSON(http.StatusOK, resp)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		resp.Database = "error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.ConnectionStatus = "connected"

	tables, err := dbpkg.Tables(h.db.WithContext(ctx), 10)
	if err != nil {
		resp.Database = fmt.Sprintf("connected but error: %s", truncate(err.Error(), 50))
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Database = "connected"
	resp.Tables = tables
	c.JSON(http.StatusOK, resp)
}

func setOrNot(ok bool) string {
	if ok {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
