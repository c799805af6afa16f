package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/http/handlers"
	"github.com/spec-kit/school-service/internal/auth"
	"github.com/spec-kit/school-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Students       *handlers.StudentsHandler
	Teachers       *handlers.TeachersHandler
	Parents        *handlers.ParentsHandler
	Classes        *handlers.ClassesHandler
	Subjects       *handlers.SubjectsHandler
	Grades         *handlers.GradesHandler
	Attendance     *handlers.AttendanceHandler
	Materials      *handlers.MaterialsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes and their role allow-lists. The
// not-found handler is registered last so unmatched paths produce the
// stable 404 envelope.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, cfg.Auth.ChangePassword)

	protected := api.Group("", cfg.AuthMiddleware.Handle)

	users := protected.Group("/users", auth.RequireRoles(domain.RoleAdmin))
	users.Post("/", cfg.Users.Create)
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	students := protected.Group("/students")
	students.Post("/", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff), cfg.Students.Enroll)
	students.Get("/", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RoleTeacher), cfg.Students.List)
	students.Get("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RoleTeacher), cfg.Students.Get)
	students.Put("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff), cfg.Students.Update)
	students.Delete("/:id", auth.RequireRoles(domain.RoleAdmin), cfg.Students.Delete)
	students.Post("/:id/parents", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff), cfg.Students.LinkParent)
	students.Delete("/:id/parents/:parentId", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff), cfg.Students.UnlinkParent)
	students.Get("/:id/grades", auth.RequireRoles(domain.RoleAdmin, domain.RoleTeacher, domain.RoleStudent, domain.RoleParent), cfg.Grades.ListByStudent)
	students.Get("/:id/attendance", auth.RequireRoles(domain.RoleAdmin, domain.RoleTeacher, domain.RoleStaff, domain.RoleStudent, domain.RoleParent), cfg.Attendance.ListByStudent)

	teachers := protected.Group("/teachers", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff))
	teachers.Post("/", cfg.Teachers.Create)
	teachers.Get("/", cfg.Teachers.List)
	teachers.Get("/:id", cfg.Teachers.Get)
	teachers.Put("/:id", cfg.Teachers.Update)
	teachers.Delete("/:id", cfg.Teachers.Delete)

	parents := protected.Group("/parents", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff))
	parents.Post("/", cfg.Parents.Create)
	parents.Get("/", cfg.Parents.List)
	parents.Get("/:id", cfg.Parents.Get)
	parents.Get("/:id/students", cfg.Parents.Students)
	parents.Put("/:id", cfg.Parents.Update)
	parents.Delete("/:id", cfg.Parents.Delete)

	classes := protected.Group("/classes")
	classes.Post("/", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff), cfg.Classes.Create)
	classes.Get("/", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RoleTeacher, domain.RoleStudent, domain.RoleParent), cfg.Classes.List)
	classes.Get("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RoleTeacher, domain.RoleStudent, domain.RoleParent), cfg.Classes.Get)
	classes.Get("/:id/roster", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RoleTeacher), cfg.Classes.Roster)
	classes.Get("/:id/attendance", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RoleTeacher), cfg.Attendance.ListByClass)
	classes.Post("/:id/students", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff), cfg.Classes.AssignStudent)
	classes.Put("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff), cfg.Classes.Update)
	classes.Delete("/:id", auth.RequireRoles(domain.RoleAdmin), cfg.Classes.Delete)

	subjects := protected.Group("/subjects")
	subjects.Post("/", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff), cfg.Subjects.Create)
	subjects.Get("/", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RoleTeacher, domain.RoleStudent, domain.RoleParent), cfg.Subjects.List)
	subjects.Get("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RoleTeacher, domain.RoleStudent, domain.RoleParent), cfg.Subjects.Get)
	subjects.Get("/:id/grades", auth.RequireRoles(domain.RoleAdmin, domain.RoleTeacher), cfg.Grades.ListBySubject)
	subjects.Get("/:id/materials", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RoleTeacher, domain.RoleStudent, domain.RoleParent), cfg.Materials.ListBySubject)
	subjects.Put("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff), cfg.Subjects.Update)
	subjects.Delete("/:id", auth.RequireRoles(domain.RoleAdmin), cfg.Subjects.Delete)

	grades := protected.Group("/grades", auth.RequireRoles(domain.RoleAdmin, domain.RoleTeacher))
	grades.Post("/", cfg.Grades.Record)
	grades.Get("/:id", cfg.Grades.Get)
	grades.Put("/:id", cfg.Grades.Update)
	grades.Delete("/:id", cfg.Grades.Delete)

	attendance := protected.Group("/attendance", auth.RequireRoles(domain.RoleAdmin, domain.RoleTeacher, domain.RoleStaff))
	attendance.Post("/", cfg.Attendance.Mark)
	attendance.Delete("/:id", cfg.Attendance.Delete)

	materials := protected.Group("/materials")
	materials.Post("/", auth.RequireRoles(domain.RoleAdmin, domain.RoleTeacher), cfg.Materials.Upload)
	materials.Get("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RoleTeacher, domain.RoleStudent, domain.RoleParent), cfg.Materials.Get)
	materials.Put("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleTeacher), cfg.Materials.Update)
	materials.Delete("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RoleTeacher), cfg.Materials.Delete)

	app.Use(NotFoundHandler())
}
