package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"courtside/internal/models/db_models"
	"courtside/internal/models/request_models"
	"courtside/internal/models/response_models"
	"courtside/internal/repositories"
	"courtside/pkg/utils"
)

// DetailsCacheTTL bounds how stale the aggregated club page may get.
const DetailsCacheTTL = time.Minute

type ClubServiceInterface interface {
	CreateClub(ctx context.Context, req request_models.CreateClubRequest, ownerID uuid.UUID) (*db_models.Club, error)
	SearchClubs(ctx context.Context, filter request_models.ClubSearchFilter) ([]db_models.Club, error)
	GetClubsByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Club, error)
	GetClub(ctx context.Context, clubID uuid.UUID) (*db_models.Club, error)
	GetClubDetails(ctx context.Context, clubID uuid.UUID) (*response_models.ClubDetails, error)
	UpdateClub(ctx context.Context, clubID uuid.UUID, req request_models.UpdateClubRequest, ownerID uuid.UUID) (*db_models.Club, error)
	AddPicture(ctx context.Context, clubID uuid.UUID, pictureURL string, ownerID uuid.UUID) (*db_models.Club, error)
	RemovePicture(ctx context.Context, clubID uuid.UUID, pictureURL string, ownerID uuid.UUID) (*db_models.Club, error)
}

type ClubService struct {
	clubRepo     repositories.ClubRepository
	userRepo     repositories.UserRepository
	reviewRepo   repositories.ReviewRepository
	commentRepo  repositories.CommentRepository
	detailsCache *cache.Cache
}

func NewClubService(
	clubRepo repositories.ClubRepository,
	userRepo repositories.UserRepository,
	reviewRepo repositories.ReviewRepository,
	commentRepo repositories.CommentRepository,
) ClubServiceInterface {
	return &ClubService{
		clubRepo:     clubRepo,
		userRepo:     userRepo,
		reviewRepo:   reviewRepo,
		commentRepo:  commentRepo,
		detailsCache: cache.New(DetailsCacheTTL, 5*time.Minute),
	}
}

func (s *ClubService) CreateClub(ctx context.Context, req request_models.CreateClubRequest, ownerID uuid.UUID) (*db_models.Club, error) {
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if owner == nil {
		return nil, utils.ErrUserNotFound
	}

	// Creating a first club promotes the user to club owner.
	if !owner.IsClubOwner {
		owner.IsClubOwner = true
		owner.Role = db_models.RoleClubOwner
		if err := s.userRepo.Update(ctx, owner); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	club := &db_models.Club{
		Name:        req.Name,
		Town:        req.Town,
		Telephone:   req.Telephone,
		HourlyPrice: req.HourlyPrice,
		Description: req.Description,
		Address:     req.Address,
		Website:     req.Website,
		SocialMedia: req.SocialMedia,
		Pictures:    []string{},
		OwnerID:     ownerID,
	}

	if err := s.clubRepo.Insert(ctx, club); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return club, nil
}

func (s *ClubService) SearchClubs(ctx context.Context, filter request_models.ClubSearchFilter) ([]db_models.Club, error) {
	clubs, err := s.clubRepo.Search(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return clubs, nil
}

func (s *ClubService) GetClubsByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Club, error) {
	clubs, err := s.clubRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return clubs, nil
}

func (s *ClubService) GetClub(ctx context.Context, clubID uuid.UUID) (*db_models.Club, error) {
	club, err := s.clubRepo.FindByID(ctx, clubID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if club == nil {
		return nil, utils.ErrClubNotFound
	}
	return club, nil
}

func (s *ClubService) GetClubDetails(ctx context.Context, clubID uuid.UUID) (*response_models.ClubDetails, error) {
	if cached, ok := s.detailsCache.Get(clubID.String()); ok {
		return cached.(*response_models.ClubDetails), nil
	}

	club, err := s.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	avgRating, err := s.reviewRepo.AverageRating(ctx, clubID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	reviewsCount, err := s.reviewRepo.CountByClub(ctx, clubID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	commentsCount, err := s.commentRepo.CountByClub(ctx, clubID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	ownerName := ""
	if owner, err := s.userRepo.FindByID(ctx, club.OwnerID); err == nil && owner != nil {
		ownerName = owner.Username
	}

	details := &response_models.ClubDetails{
		Club:          *club,
		AverageRating: avgRating,
		ReviewsCount:  reviewsCount,
		CommentsCount: commentsCount,
		OwnerName:     ownerName,
	}

	s.detailsCache.Set(clubID.String(), details, cache.DefaultExpiration)
	return details, nil
}

func (s *ClubService) UpdateClub(ctx context.Context, clubID uuid.UUID, req request_models.UpdateClubRequest, ownerID uuid.UUID) (*db_models.Club, error) {
	club, err := s.ownedClub(ctx, clubID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Town != nil {
		club.Town = *req.Town
	}
	if req.Telephone != nil {
		club.Telephone = *req.Telephone
	}
	if req.HourlyPrice != nil {
		club.HourlyPrice = *req.HourlyPrice
	}
	if req.Description != nil {
		club.Description = *req.Description
	}
	if req.Address != nil {
		club.Address = *req.Address
	}
	if req.Website != nil {
		club.Website = *req.Website
	}
	if req.SocialMedia != nil {
		club.SocialMedia = *req.SocialMedia
	}

	return s.saveClub(ctx, club)
}

func (s *ClubService) AddPicture(ctx context.Context, clubID uuid.UUID, pictureURL string, ownerID uuid.UUID) (*db_models.Club, error) {
	club, err := s.ownedClub(ctx, clubID, ownerID)
	if err != nil {
		return nil, err
	}

	club.AddPicture(pictureURL)
	return s.saveClub(ctx, club)
}

func (s *ClubService) RemovePicture(ctx context.Context, clubID uuid.UUID, pictureURL string, ownerID uuid.UUID) (*db_models.Club, error) {
	club, err := s.ownedClub(ctx, clubID, ownerID)
	if err != nil {
		return nil, err
	}

	if !club.RemovePicture(pictureURL) {
		return nil, utils.ErrPictureNotFound
	}
	return s.saveClub(ctx, club)
}

func (s *ClubService) ownedClub(ctx context.Context, clubID, ownerID uuid.UUID) (*db_models.Club, error) {
	club, err := s.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club.OwnerID != ownerID {
		return nil, utils.ErrNotClubOwner
	}
	return club, nil
}

func (s *ClubService) saveClub(ctx context.Context, club *db_models.Club) (*db_models.Club, error) {
	if err := s.clubRepo.Update(ctx, club); err != nil {
		return nil, utils.ErrDatabaseError
	}
	s.detailsCache.Delete(club.ID.String())
	return club, nil
}
