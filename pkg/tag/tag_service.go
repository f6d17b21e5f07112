package tag

import (
	"Recipe-App-API/domain"
	"Recipe-App-API/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TagService interface {
		GetTags(ctx context.Context, userID string, assignedOnly bool) ([]domain.TagResponse, error)
		CreateTag(ctx context.Context, req domain.CreateTagRequest, userID string) (domain.TagResponse, error)
		UpdateTag(ctx context.Context, id string, req domain.UpdateTagRequest, userID string) (domain.TagResponse, error)
		DeleteTag(ctx context.Context, id string, userID string) error
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func (s *tagService) GetTags(ctx context.Context, userID string, assignedOnly bool) ([]domain.TagResponse, error) {
	tags, err := s.tagRepository.GetTags(ctx, userID, assignedOnly)
	if err != nil {
		return nil, err
	}

	response := make([]domain.TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, domain.TagResponse{
			ID:   tag.ID.String(),
			Name: tag.Name,
		})
	}

	return response, nil
}

func (s *tagService) CreateTag(ctx context.Context, req domain.CreateTagRequest, userID string) (domain.TagResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.TagResponse{}, domain.ErrParseUUID
	}

	tag := &entities.Tag{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   req.Name,
	}

	if err := s.tagRepository.CreateTag(ctx, tag); err != nil {
		return domain.TagResponse{}, err
	}

	return domain.TagResponse{ID: tag.ID.String(), Name: tag.Name}, nil
}

func (s *tagService) UpdateTag(ctx context.Context, id string, req domain.UpdateTagRequest, userID string) (domain.TagResponse, error) {
	tag, err := s.tagRepository.GetTagByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TagResponse{}, domain.ErrTagNotFound
		}
		return domain.TagResponse{}, err
	}

	// A tag owned by someone else must look absent.
	if tag.UserID.String() != userID {
		return domain.TagResponse{}, domain.ErrTagNotFound
	}

	tag.Name = req.Name
	if err := s.tagRepository.UpdateTag(ctx, tag); err != nil {
		return domain.TagResponse{}, err
	}

	return domain.TagResponse{ID: tag.ID.String(), Name: tag.Name}, nil
}

func (s *tagService) DeleteTag(ctx context.Context, id string, userID string) error {
	tag, err := s.tagRepository.GetTagByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTagNotFound
		}
		return err
	}

	if tag.UserID.String() != userID {
		return domain.ErrTagNotFound
	}

	return s.tagRepository.DeleteTag(ctx, id)
}
