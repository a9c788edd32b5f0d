package handlers

import (
	"net/http"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	intdb "github.com/babludoman333/rail-easy-seats/internal/db"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "railease-api"})
}

// DBCheck pings the database and reports which owned tables exist, so a
// half-run schema bootstrap is visible without shelling into MySQL.
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database unreachable: " + err.Error()})
		return
	}

	tables := gin.H{}
	for _, table := range []string{"users", "stations", "trains", "seats", "bookings", "driver_profiles", "cab_bookings"} {
		tables[table] = intdb.HasTable(intconfig.DB, table)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "database connection OK",
		"tables":           tables,
		"seat_lists_typed": intdb.HasColumn(intconfig.DB, "bookings", "seat_numbers"),
	})
}
