package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rahulranjandev/trello-clone/config"
	"github.com/rahulranjandev/trello-clone/handlers"
	"github.com/rahulranjandev/trello-clone/logging"
	"github.com/rahulranjandev/trello-clone/middleware"
	"github.com/rahulranjandev/trello-clone/repositories"
	"github.com/rahulranjandev/trello-clone/services"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting trello-clone backend...")

	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", cfg.MongoURI)

	db := client.Database(cfg.MongoDBName)

	userRepo := repositories.NewMongoUserRepository(db.Collection("users"))
	projectRepo := repositories.NewMongoProjectRepository(db.Collection("projects"))
	boardRepo := repositories.NewMongoTaskBoardRepository(db.Collection("taskboards"))
	taskRepo := repositories.NewMongoTaskRepository(db.Collection("tasks"))

	jwtService := services.NewJWTService(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	hierarchyService := services.NewHierarchyService(projectRepo, boardRepo, taskRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, hierarchyService)
	boardService := services.NewTaskBoardService(projectRepo, boardRepo, hierarchyService)
	taskService := services.NewTaskService(projectRepo, boardRepo, taskRepo, hierarchyService)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo)

	authHandler := handlers.NewAuthHandler(userService, jwtService, cfg.IsProduction(), cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	boardHandler := handlers.NewTaskBoardHandler(boardService)
	taskHandler := handlers.NewTaskHandler(taskService)

	router := handlers.NewRouter(authMiddleware, authHandler, userHandler, projectHandler, boardHandler, taskHandler)
	corsRouter := enableCORS(router)

	serverAddress := fmt.Sprintf(":%s", cfg.Port)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
