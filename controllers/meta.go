// controllers/meta.go
package controllers

import (
	"net/http"
	"os"
	"runtime"

	"github.com/gin-gonic/gin"
)

// HealthCheck answers the load balancer probe.
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// ServiceInfo returns deployment metadata for quick diagnostics.
func ServiceInfo(dataDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		hostname, _ := os.Hostname()
		cwd, _ := os.Getwd()
		c.JSON(http.StatusOK, gin.H{
			"name":     "hairstyleportal",
			"go":       runtime.Version(),
			"hostname": hostname,
			"cwd":      cwd,
			"dataDir":  dataDir,
		})
	}
}
