package recipe

import (
	"Recipe-App-API/domain"
	"Recipe-App-API/entities"
	"Recipe-App-API/internal/utils/storage"
	"Recipe-App-API/pkg/ingredient"
	"Recipe-App-API/pkg/tag"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, userID string, tagIDs, ingredientIDs []string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		UploadRecipeImage(ctx context.Context, id string, req domain.UploadRecipeImageRequest, userID string) (domain.UploadImageResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

// resolveTags maps the payload's tag names to the user's tag rows,
// creating any that do not exist yet. Duplicate names collapse to one
// entry. Two concurrent writes naming the same new tag can both pass the
// lookup and insert it twice; there is no guard against that.
func (s *recipeService) resolveTags(ctx context.Context, userID uuid.UUID, inputs []domain.TagInput) ([]*entities.Tag, error) {
	seen := make(map[string]bool, len(inputs))
	tags := make([]*entities.Tag, 0, len(inputs))

	for _, input := range inputs {
		if seen[input.Name] {
			continue
		}
		seen[input.Name] = true

		existing, err := s.tagRepository.GetTagByUserAndName(ctx, userID.String(), input.Name)
		if err == nil {
			tags = append(tags, existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		created := &entities.Tag{
			ID:     uuid.New(),
			UserID: userID,
			Name:   input.Name,
		}
		if err := s.tagRepository.CreateTag(ctx, created); err != nil {
			return nil, err
		}
		tags = append(tags, created)
	}

	return tags, nil
}

func (s *recipeService) resolveIngredients(ctx context.Context, userID uuid.UUID, inputs []domain.IngredientInput) ([]*entities.Ingredient, error) {
	seen := make(map[string]bool, len(inputs))
	ingredients := make([]*entities.Ingredient, 0, len(inputs))

	for _, input := range inputs {
		if seen[input.Name] {
			continue
		}
		seen[input.Name] = true

		existing, err := s.ingredientRepository.GetIngredientByUserAndName(ctx, userID.String(), input.Name)
		if err == nil {
			ingredients = append(ingredients, existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		created := &entities.Ingredient{
			ID:     uuid.New(),
			UserID: userID,
			Name:   input.Name,
		}
		if err := s.ingredientRepository.CreateIngredient(ctx, created); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, created)
	}

	return ingredients, nil
}

func toDetailResponse(recipe *entities.Recipe) domain.RecipeDetailResponse {
	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tags = append(tags, domain.TagResponse{ID: t.ID.String(), Name: t.Name})
	}

	ingredients := make([]domain.IngredientResponse, 0, len(recipe.Ingredients))
	for _, i := range recipe.Ingredients {
		ingredients = append(ingredients, domain.IngredientResponse{ID: i.ID.String(), Name: i.Name})
	}

	return domain.RecipeDetailResponse{
		RecipeResponse: domain.RecipeResponse{
			ID:          recipe.ID.String(),
			Title:       recipe.Title,
			TimeMinutes: recipe.TimeMinutes,
			Price:       recipe.Price,
			Link:        recipe.Link,
			CreatedAt:   recipe.CreatedAt,
		},
		Description: recipe.Description,
		ImageURL:    recipe.ImageURL,
		Tags:        tags,
		Ingredients: ingredients,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string, tagIDs, ingredientIDs []string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID, tagIDs, ingredientIDs)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, domain.RecipeResponse{
			ID:          recipe.ID.String(),
			Title:       recipe.Title,
			TimeMinutes: recipe.TimeMinutes,
			Price:       recipe.Price,
			Link:        recipe.Link,
			CreatedAt:   recipe.CreatedAt,
		})
	}

	return response, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	// A recipe owned by someone else must look absent.
	if recipe.UserID.String() != userID {
		return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
	}

	return toDetailResponse(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	tags, err := s.resolveTags(ctx, userUUID, req.Tags)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	ingredients, err := s.resolveIngredients(ctx, userUUID, req.Ingredients)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return toDetailResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	if recipe.UserID.String() != userID {
		return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Link != "" {
		recipe.Link = req.Link
	}

	// Nil means the relation was omitted from the payload and stays as it
	// is; an empty slice replaces the set with nothing.
	var tags []*entities.Tag
	if req.Tags != nil {
		tags, err = s.resolveTags(ctx, recipe.UserID, req.Tags)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
	}

	var ingredients []*entities.Ingredient
	if req.Ingredients != nil {
		ingredients, err = s.resolveIngredients(ctx, recipe.UserID, req.Ingredients)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, tags, ingredients); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	if req.Tags != nil {
		recipe.Tags = tags
	}
	if req.Ingredients != nil {
		recipe.Ingredients = ingredients
	}

	return toDetailResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID {
		return domain.ErrRecipeNotFound
	}

	if recipe.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipe)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id string, req domain.UploadRecipeImageRequest, userID string) (domain.UploadImageResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadImageResponse{}, domain.ErrRecipeNotFound
		}
		return domain.UploadImageResponse{}, err
	}

	if recipe.UserID.String() != userID {
		return domain.UploadImageResponse{}, domain.ErrRecipeNotFound
	}

	var objectKey string
	if recipe.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, err = s.s3.UploadFile(uuid.New().String(), req.Image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, err = s.s3.UploadFile(uuid.New().String(), req.Image, "recipes", storage.AllowImage...)
	}
	if err != nil {
		return domain.UploadImageResponse{}, err
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, nil, nil); err != nil {
		return domain.UploadImageResponse{}, err
	}

	return domain.UploadImageResponse{ImageURL: recipe.ImageURL}, nil
}
