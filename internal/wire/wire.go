package wire

import (
	"Stride/internal/api"
	"Stride/internal/api/config"
	"Stride/internal/api/handler"
	"Stride/internal/job"
	"Stride/internal/pkg/cron"
	"Stride/internal/pkg/es"
	"Stride/internal/pkg/kafka"
	"Stride/internal/pkg/mongo"
	"Stride/internal/repository"
	"Stride/internal/service"

	"github.com/gin-gonic/gin"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer holds the top-level components the process runs.
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodrv.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	trainingRepo := repository.NewTrainingRequestRepo(db)
	postRepo := repository.NewPostRepo(db)
	postActionRepo := repository.NewPostActionRepo(db)
	conversationRepo := repository.NewConversationRepo(db)
	messageRepo := mongo.NewMessageRepo(mongoDB)
	userESRepo := es.NewUserRepo()

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, profileRepo)
	profileService := service.NewProfileService(userRepo, profileRepo)
	userFollowService := service.NewUserFollowService(userRepo, userFollowRepo)
	activityService := service.NewActivityService(userRepo, profileRepo, activityRepo)
	trainingService := service.NewTrainingService(userRepo, profileRepo, trainingRepo, activityService)
	postService := service.NewPostService(userRepo, postRepo, postActionRepo, userFollowRepo, activityService)
	postActionService := service.NewPostActionService(userRepo, postRepo, postActionRepo, activityService)
	imService := service.NewIMService(userRepo, conversationRepo, messageRepo)
	searchService := service.NewSearchService(userESRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(authService),
		UserHandler:       handler.NewUserHandler(userService),
		ProfileHandler:    handler.NewProfileHandler(profileService),
		UserFollowHandler: handler.NewUserFollowHandler(userFollowService),
		ActivityHandler:   handler.NewActivityHandler(activityService),
		TrainingHandler:   handler.NewTrainingHandler(trainingService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(postActionService),
		IMHandler:         handler.NewIMHandler(imService),
		SearchHandler:     handler.NewSearchHandler(searchService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, userESRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewFollowCountJob(userFollowService),
		job.NewActivityReconcileJob(activityService),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
