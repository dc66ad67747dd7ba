package api

import "Stride/internal/api/handler"

// HandlersGroup bundles all initialized handlers for router setup.
type HandlersGroup struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	ProfileHandler    *handler.ProfileHandler
	UserFollowHandler *handler.UserFollowHandler
	ActivityHandler   *handler.ActivityHandler
	TrainingHandler   *handler.TrainingHandler
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
	IMHandler         *handler.IMHandler
	SearchHandler     *handler.SearchHandler
}
