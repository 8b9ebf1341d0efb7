package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/mindfit/MindFitBack/internal/handlers"
	"github.com/mindfit/MindFitBack/internal/repository"
	"github.com/mindfit/MindFitBack/internal/services"
)

func RegisterRoutes(app *fiber.App, db *sqlx.DB) {
	studentRepo := repository.NewStudentRepository(db)
	coachRepo := repository.NewCoachRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	customWorkoutRepo := repository.NewCustomWorkoutRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	workoutService := services.NewWorkoutService(workoutRepo, customWorkoutRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	enrollmentService := services.NewEnrollmentService(db, studentRepo, coachRepo)
	ratingService := services.NewRatingService(ratingRepo)
	statsService := services.NewStatsService(studentRepo, coachRepo, moodRepo, ratingRepo, paymentRepo)

	studentHandler := handlers.NewStudentHandler(studentRepo, enrollmentService)
	coachHandler := handlers.NewCoachHandler(coachRepo)
	moodHandler := handlers.NewMoodHandler(moodRepo)
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo, workoutService)
	customWorkoutHandler := handlers.NewCustomWorkoutHandler(customWorkoutRepo, studentRepo)
	paymentHandler := handlers.NewPaymentHandler(paymentService, paymentRepo)
	ratingHandler := handlers.NewRatingHandler(ratingService, ratingRepo)
	adminHandler := handlers.NewAdminHandler(adminRepo, statsService)

	api := app.Group("/api")

	students := api.Group("/students")
	students.Get("", studentHandler.List)
	students.Post("", studentHandler.Create)
	students.Post("/login", studentHandler.Login)
	students.Get("/by-coach/:coachId", studentHandler.ListByCoach)
	students.Get("/:id", studentHandler.Get)
	students.Put("/:id/coach", studentHandler.SelectCoach)

	coaches := api.Group("/coaches")
	coaches.Get("", coachHandler.List)
	coaches.Post("", coachHandler.Create)
	coaches.Post("/login", coachHandler.Login)
	coaches.Get("/:id", coachHandler.Get)

	moods := api.Group("/moods")
	moods.Get("", moodHandler.List)
	moods.Post("", moodHandler.Create)
	moods.Get("/student/:studentId", moodHandler.ListByStudent)

	workouts := api.Group("/workouts")
	workouts.Get("", workoutHandler.List)
	workouts.Get("/by-mood/:moodType", workoutHandler.ListByMood)
	workouts.Get("/mood/:moodType", workoutHandler.Suggest)

	customWorkouts := api.Group("/custom-workouts")
	customWorkouts.Post("", customWorkoutHandler.Upsert)
	customWorkouts.Get("/coach/:coachId", customWorkoutHandler.ListByCoach)
	customWorkouts.Put("/:id/active", customWorkoutHandler.SetActive)

	payments := api.Group("/payments")
	payments.Get("", paymentHandler.List)
	payments.Post("/process", paymentHandler.Process)
	payments.Get("/student/:studentId", paymentHandler.ListByStudent)
	payments.Get("/coach/:coachId", paymentHandler.ListByCoach)

	ratings := api.Group("/coach-ratings")
	ratings.Get("", ratingHandler.List)
	ratings.Post("", ratingHandler.Create)
	ratings.Put("", ratingHandler.Update)
	ratings.Get("/coach/:coachId", ratingHandler.ListByCoach)
	ratings.Get("/student/:studentId/coach/:coachId", ratingHandler.GetByPair)
	ratings.Delete("/:id", ratingHandler.Delete)

	admin := api.Group("/admin")
	admin.Get("", adminHandler.List)
	admin.Post("/login", adminHandler.Login)
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/:id", adminHandler.Get)
}
