package v1

import (
	"github.com/gofiber/fiber/v3"

	"internscout/internal/delivery/http/handler"
	"internscout/internal/delivery/http/middleware"
	"internscout/internal/domain/outreach"
	"internscout/internal/pkg/jwt"
	"internscout/internal/repository"
	"internscout/internal/usecase"
)

// Dependencies carries the shared infrastructure the v1 routes wire
// their usecases from. Repositories are shared with the seeders, so the
// container owns them rather than this package.
type Dependencies struct {
	JWT      jwt.Service
	Profiles repository.ProfileRepository
	Listings repository.ListingRepository
	Drafts   repository.DraftRepository
	Cache    usecase.MatchCache
}

func Register(r fiber.Router, deps Dependencies) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(deps.JWT)

	authUC := usecase.NewAuthUsecase(deps.Profiles, deps.JWT)
	profileUC := usecase.NewProfileUsecase(deps.Profiles)
	listingUC := usecase.NewListingUsecase(deps.Listings)
	matchingUC := usecase.NewMatchingUsecase(deps.Profiles, deps.Listings, deps.Cache)
	outreachUC := usecase.NewOutreachUsecase(deps.Profiles, deps.Listings, deps.Drafts, outreach.DefaultPolicy())

	authHandler := handler.NewAuthHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	resumeHandler := handler.NewResumeHandler(profileUC)
	listingHandler := handler.NewListingHandler(listingUC, matchingUC)
	matchHandler := handler.NewMatchHandler(matchingUC)
	outreachHandler := handler.NewOutreachHandler(outreachUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))
	profileHandler.RegisterRoutes(protected)
	resumeHandler.RegisterRoutes(protected)
	listingHandler.RegisterRoutes(protected)
	matchHandler.RegisterRoutes(protected)
	outreachHandler.RegisterRoutes(protected)
}
