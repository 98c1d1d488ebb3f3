package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"frontdesk-backend/controllers"
	"frontdesk-backend/middleware"
	"frontdesk-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		// the two dashboard origins
		return []string{"http://localhost:8000", "http://localhost:3000"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"http://localhost:8000", "http://localhost:3000"}
	}
	return origins
}

// SetupRouter wires the /staff and /admin groups. /admin requires the Admin
// role; /staff accepts Staff or Admin.
func SetupRouter(
	hc *controllers.HistoryController,
	rsc *controllers.RoomServiceController,
	sc *controllers.StatsController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     parseCorsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}

	staff := r.Group("/staff", middleware.AuthMiddleware(models.RoleStaff, models.RoleAdmin))
	{
		staff.GET("/rooms", controllers.GetRooms)
		staff.GET("/rooms/:id", controllers.GetRoomByID)
		staff.PUT("/rooms/:id/status", hc.UpdateRoomStatus)
		staff.PUT("/rooms/:id/roomType", hc.AssignRoomType)

		staff.GET("/roomtypes", controllers.GetRoomTypes)
		staff.GET("/roomtypes/:id", controllers.GetRoomTypeByID)

		staff.GET("/services", controllers.GetServices)
		staff.GET("/services/:id", controllers.GetServiceByID)

		staff.GET("/usersdto", controllers.GetUsersDTO)

		staff.GET("/histories", hc.GetHistories)
		staff.GET("/histories/:id", hc.GetHistoryByID)
		staff.GET("/histories/room/:id", hc.GetHistoriesByRoom)
		staff.POST("/histories", hc.CreateHistory)
		staff.PUT("/histories/:id", hc.UpdateHistory)

		staff.POST("/roomservices", rsc.AddRoomServices)
		staff.PUT("/roomservices/:id", rsc.SetQuantity)
		staff.DELETE("/roomservices/:id", rsc.DeleteRoomService)
		staff.DELETE("/roomservices", rsc.DeleteRoomServiceByPair)

		staff.GET("/requests", controllers.GetRequests)
		staff.POST("/requests", controllers.CreateRequest)
	}

	admin := r.Group("/admin", middleware.AuthMiddleware(models.RoleAdmin))
	{
		admin.GET("/rooms", controllers.GetRooms)
		admin.POST("/rooms", controllers.CreateRoom)
		admin.PUT("/rooms/:id", controllers.UpdateRoom)
		admin.DELETE("/rooms/:id", controllers.DeleteRoom)

		admin.GET("/roomtypes", controllers.GetRoomTypes)
		admin.POST("/roomtypes", controllers.CreateRoomType)
		admin.PUT("/roomtypes/:id", controllers.UpdateRoomType)
		admin.DELETE("/roomtypes/:id", controllers.DeleteRoomType)

		admin.GET("/services", controllers.GetServices)
		admin.POST("/services", controllers.CreateService)
		admin.PUT("/services/:id", controllers.UpdateService)
		admin.DELETE("/services/:id", controllers.DeleteService)

		admin.GET("/users", controllers.GetUsers)
		admin.POST("/users", controllers.CreateUser)
		admin.PUT("/users/:id", controllers.UpdateUser)
		admin.DELETE("/users/:id", controllers.DeleteUser)

		admin.DELETE("/histories/:id", hc.DeleteHistory)

		admin.PUT("/requests/:id", controllers.UpdateRequestStatus)
		admin.DELETE("/requests/:id", controllers.DeleteRequest)

		admin.GET("/statistics", sc.GetStatistics)
	}

	return r
}
