package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hjortab/hjort-api/controllers"
	"github.com/hjortab/hjort-api/middlewares"
	"github.com/hjortab/hjort-api/repositories"
	"github.com/hjortab/hjort-api/services"
	"github.com/hjortab/hjort-api/validation"
)

// SetupRouter wires every resource through the same pipeline:
// (auth gate) -> (body validation) -> controller -> service ->
// repository. Public routes skip the gate, query routes skip the
// validator.
func SetupRouter(db *gorm.DB, rateLimiter *middlewares.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	// Gin only applies middleware to routes registered after it, so
	// the limiter has to be attached before the route tree below.
	r.Use(rateLimiter.RateLimit())
	r.Use(middlewares.LoggerMiddleware())

	adminUserCtrl := controllers.NewAdminUserController(
		services.NewAdminUserService(repositories.NewGormAdminUserRepo(db)))
	reservationCtrl := controllers.NewReservationController(
		services.NewReservationService(repositories.NewGormReservationRepo(db)))
	courseMenuCtrl := controllers.NewCourseMenuController(
		services.NewCourseMenuService(repositories.NewGormCourseMenuRepo(db)))
	drinkMenuCtrl := controllers.NewDrinkMenuController(
		services.NewDrinkMenuService(repositories.NewGormDrinkMenuRepo(db)))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api.POST("/admin/login",
		middlewares.LoginRateLimit(),
		validation.Body[validation.AdminUserPayload](),
		adminUserCtrl.Login)

	public := api.Group("/public")
	{
		public.POST("/reservations",
			validation.Body[validation.ReservationPayload](),
			reservationCtrl.Create)
		public.GET("/course-menu", courseMenuCtrl.GetAllMenus)
		public.GET("/course/:id", courseMenuCtrl.GetCoursesByMenuID)
		public.GET("/drink-menu", drinkMenuCtrl.GetAllMenus)
		public.GET("/drink/:id", drinkMenuCtrl.GetDrinksByMenuID)
	}

	protected := api.Group("/protected")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/reservations", reservationCtrl.GetAll)
		protected.DELETE("/reservations/:id", reservationCtrl.Delete)

		protected.PUT("/course-menu/:id",
			validation.Body[validation.CourseMenuPayload](),
			courseMenuCtrl.UpdateMenu)
		protected.POST("/course",
			validation.Body[validation.CoursePayload](),
			courseMenuCtrl.CreateCourse)
		protected.PUT("/course/:id",
			validation.Body[validation.CourseUpdatePayload](),
			courseMenuCtrl.UpdateCourse)
		protected.DELETE("/course/:id", courseMenuCtrl.DeleteCourse)

		protected.PUT("/drink-menu/:id",
			validation.Body[validation.DrinkMenuPayload](),
			drinkMenuCtrl.UpdateMenu)
		protected.POST("/drink",
			validation.Body[validation.DrinkPayload](),
			drinkMenuCtrl.CreateDrink)
		protected.PUT("/drink/:id",
			validation.Body[validation.DrinkUpdatePayload](),
			drinkMenuCtrl.UpdateDrink)
		protected.DELETE("/drink/:id", drinkMenuCtrl.DeleteDrink)
	}

	return r
}
